package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the user a request acts on behalf of.
// It is built by the delivery layer and passed to every UseCase call.
type Scope struct {
	UserID   string
	DeviceID string // Identifier of the capturing device, used for rate limiting
}

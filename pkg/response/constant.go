package response

// Error codes and default messages for the standard JSON envelope.
const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "internal server error"
	InternalServerErrorCode = 500
)

// DateTimeFormat is the wire format for DateTime values.
const DateTimeFormat = "2006-01-02 15:04:05"

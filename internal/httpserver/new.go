package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	taskHTTP "voicetask/internal/task/delivery/http"
	"voicetask/internal/urgency"
	"voicetask/pkg/log"
)

// Rescorer exposes the latest urgency-scored snapshot.
type Rescorer interface {
	Snapshot() []urgency.Ranked
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	taskHandler taskHTTP.Handler
	rescorer    Rescorer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskHandler taskHTTP.Handler
	Rescorer    Rescorer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		taskHandler: cfg.TaskHandler,
		rescorer:    cfg.Rescorer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}

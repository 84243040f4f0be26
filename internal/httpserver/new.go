package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"easynote/config"
	"easynote/pkg/aiprovider"
	"easynote/pkg/log"
	"easynote/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	cfg        *config.Config
	db         *sql.DB
	jwtManager scope.Manager
	resolver   *aiprovider.Resolver
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *config.Config
	DB         *sql.DB
	JWTManager scope.Manager
	Resolver   *aiprovider.Resolver
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		resolver:    cfg.Resolver,
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
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.resolver == nil {
		return errors.New("provider resolver is required")
	}
	return nil
}

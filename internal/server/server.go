// Package server wires the job application API, the static front-end and
// the shared middleware into one http.Server
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Gokulvemuri/job-application-manager/internal/database"
)

const defaultPort = 3000

// Config holds the HTTP settings read from the environment
type Config struct {
	Port         int
	StaticDir    string
	AllowOrigins []string
}

// ConfigFromEnv reads PORT, STATIC_DIR and ALLOW_ORIGIN
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:      defaultPort,
		StaticDir: "build",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("PORT environments variables are invalid: %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	for _, origin := range strings.Split(os.Getenv("ALLOW_ORIGIN"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	return cfg, nil
}

// Server contain port which server are running on and database instance
type Server struct {
	cfg    Config
	db     *database.DBinstanceStruct
	logger *zap.Logger
}

// New creates a Server around the shared database pool
func New(cfg Config, db *database.DBinstanceStruct, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// HTTPServer builds the http.Server serving every route
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

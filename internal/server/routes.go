package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Init swagger doc
	_ "github.com/Gokulvemuri/job-application-manager/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Gokulvemuri/job-application-manager/internal/controller/jobapplication"
	"github.com/Gokulvemuri/job-application-manager/internal/middleware"
	"github.com/Gokulvemuri/job-application-manager/internal/static"
)

// RegisterRoutes composes the API router with the static front-end,
// which answers every path no API route matched.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	r.Use(
		middleware.RequestID(),
		middleware.SafeHeader(),
		cors.New(s.corsConfig()),
	)

	controller := jobapplication.NewJobApplicationController(s.db, s.logger)

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	jobRoute := r.Group("/job")
	{
		jobRoute.Use(
			middleware.EnvRateLimitMiddleware(),
			middleware.SizeLimit(middleware.DefaultJSONBodyLimit),
		)
		jobRoute.POST("", controller.CreateJob)
		jobRoute.GET("", controller.GetJobs)
		jobRoute.GET("/:id", controller.GetJobByID)
		jobRoute.PUT("/:id", controller.UpdateJob)
		jobRoute.DELETE("/:id", controller.DeleteJob)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(static.NewSPA(s.cfg.StaticDir).Serve)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}
	if len(s.cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = s.cfg.AllowOrigins
	cfg.AllowCredentials = true
	return cfg
}

// HelloWorldHandler answers the liveness check with plain text
// @Summary Liveness check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Server running"
// @Router / [get]
func (s *Server) HelloWorldHandler(c *gin.Context) {
	c.String(http.StatusOK, "Server running")
}

// healthHandler reports connection pool statistics
// @Summary Database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Pool statistics"
// @Failure 503 {object} map[string]string "Database unreachable"
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	stats := s.db.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

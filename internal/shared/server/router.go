package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-backend/internal/auth"
	"studio-backend/internal/files"
	"studio-backend/internal/projects"
	"studio-backend/internal/shared/config"
	"studio-backend/internal/shared/metrics"
	"studio-backend/internal/shared/server/middleware"
	"studio-backend/internal/shared/server/respond"
	"studio-backend/internal/teams"
	"studio-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	TeamsHandler   *teams.Handler
	ProjectHandler *projects.Handler
	FilesHandler   *files.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *auth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"FILE_WRITE": {Rate: 10, Burst: 20},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPut {
					return "FILE_WRITE"
				}
				return ""
			},
			Limiter: middleware.NewRateLimiter(time.Now),
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.TeamsHandler != nil {
		deps.TeamsHandler.RegisterRoutes(api)
	}
	if deps.ProjectHandler != nil {
		deps.ProjectHandler.RegisterRoutes(api)
	}
	if deps.FilesHandler != nil {
		deps.FilesHandler.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

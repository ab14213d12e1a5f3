package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/logischolar/analytics-backend/internal/config"
	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/handler"
	"github.com/logischolar/analytics-backend/internal/middleware"
	"github.com/logischolar/analytics-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System     *handler.SystemHandler
	Dashboard  *handler.DashboardHandler
	Department *handler.DepartmentHandler
	Forecast   *handler.ForecastHandler
	Student    *handler.StudentHandler
}

// SetupRouter configures the Gin engine with the three view surfaces:
// dashboard, predictor (departments + forecast), and search.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	router := newEngine(cfg)

	router.GET("/health", handlers.System.Health)

	api := router.Group("/api/v1")
	if cfg.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		api.Use(limiter.Middleware())
	}
	{
		// ─── Dashboard view ────────────────────────────────────────────
		api.GET("/dashboard", handlers.Dashboard.GetDashboard)

		// ─── Predictor view ────────────────────────────────────────────
		api.GET("/departments", handlers.Department.ListDepartments)
		api.GET("/departments/:code/subjects", handlers.Department.GetSubjects)
		api.POST("/forecast", handlers.Forecast.Forecast)

		// ─── Search view ───────────────────────────────────────────────
		api.GET("/students/:register_no", handlers.Student.GetStudent)
		api.GET("/students/:register_no/report", handlers.Student.DownloadReport)
	}

	return router
}

// SetupDegradedRouter serves the blocking error state used when the dataset
// cannot be loaded: the process stays up, health reports the condition, and
// every data route answers 503 with the operator-facing message.
func SetupDegradedRouter(cfg *config.Config, loadErr error) *gin.Engine {
	router := newEngine(cfg)

	code := response.ErrDatasetInvalid
	if dataset.IsMissing(loadErr) {
		code = response.ErrDatasetMissing
	}

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status": "degraded",
			"error":  code,
		})
	})

	router.Group("/api/v1").Use(func(c *gin.Context) {
		response.AbortFail(c, http.StatusServiceUnavailable, code)
	}).Any("/*path", func(c *gin.Context) {})

	return router
}

func newEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Compress())

	return router
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/interview-console/api/swagger"
	"github.com/noah-isme/interview-console/internal/handler"
	"github.com/noah-isme/interview-console/internal/middleware"
	"github.com/noah-isme/interview-console/internal/service"
	"github.com/noah-isme/interview-console/internal/session"
	"github.com/noah-isme/interview-console/internal/upstream"
	"github.com/noah-isme/interview-console/pkg/cache"
	"github.com/noah-isme/interview-console/pkg/config"
	"github.com/noah-isme/interview-console/pkg/logger"
	corsmiddleware "github.com/noah-isme/interview-console/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/interview-console/pkg/middleware/requestid"
)

// @title Interview Console API
// @version 0.1.0
// @description BFF for the mock-interview training console
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	client := upstream.NewClient(cfg.Upstream.BaseURL,
		upstream.WithTimeout(cfg.Upstream.Timeout),
		upstream.WithLogger(logr),
		upstream.WithObserver(metrics.ObserveUpstreamCall),
	)

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, option cache disabled", zap.Error(err))
		redisClient = nil
	}

	store := session.NewStore(cfg.Session)

	authService := service.NewAuthService(client, service.AuthConfig{
		JWTSecret:     cfg.Session.JWTSecret,
		StudentExpiry: cfg.Session.StudentMaxAge,
		AdminExpiry:   cfg.Session.AdminExpiry,
	}, nil, logr)

	var cacheBackend redis.Cmdable
	if redisClient != nil {
		cacheBackend = redisClient
	}
	optionsService := service.NewOptionsService(client, cacheBackend, cfg.Options.CacheTTL, cfg.Options.WarmWorkers, logr)
	optionsService.SetMetrics(metrics)
	optionsService.Start(context.Background())
	defer optionsService.Stop()

	listingCfg := service.ListingConfig{
		DebounceWindow:  cfg.Listing.DebounceWindow,
		DefaultPageSize: cfg.Listing.DefaultPageSize,
	}

	dashboardService := service.NewDashboardService(client, logr)
	interviewService := service.NewInterviewService(client, logr)
	studentsService := service.NewStudentListService(client, listingCfg, logr)
	sessionsService := service.NewSessionListService(client, listingCfg, logr)
	leaderboardService := service.NewLeaderboardService(client, listingCfg, cfg.Leaderboard.ExportEnabled, logr)
	questionService := service.NewQuestionService(client, optionsService, logr)
	importService := service.NewImportService(client, logr)
	mappingService := service.NewMappingService(client, optionsService, logr)

	authHandler := handler.NewAuthHandler(authService, store, studentsService, sessionsService, leaderboardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	interviewHandler := handler.NewInterviewHandler(interviewService)
	studentsHandler := handler.NewStudentsHandler(studentsService)
	sessionsHandler := handler.NewSessionsHandler(sessionsService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	questionsHandler := handler.NewQuestionsHandler(questionService, optionsService)
	importsHandler := handler.NewImportsHandler(importService)
	mappingHandler := handler.NewMappingHandler(mappingService, optionsService)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/student/login", authHandler.StudentLogin)
		auth.POST("/student/logout", authHandler.StudentLogout)
		auth.POST("/admin/login", authHandler.AdminLogin)
	}

	student := api.Group("/student", middleware.StudentSession(store, authService))
	{
		student.GET("/dashboard", dashboardHandler.Student)

		interview := student.Group("/interview")
		interview.GET("/instructions", interviewHandler.Instructions)
		interview.POST("/start", interviewHandler.Start)
		interview.GET("/:id/question", interviewHandler.Question)
		interview.POST("/answer", interviewHandler.Answer)
		interview.POST("/:id/complete", interviewHandler.Complete)
	}

	if cfg.Admin.Enabled {
		admin := api.Group("/admin", middleware.AdminSession(store, authService))
		{
			admin.POST("/logout", authHandler.AdminLogout)
			admin.GET("/profile", authHandler.AdminProfile)
			admin.PUT("/tab", authHandler.SetActiveTab)

			admin.GET("/dashboard", dashboardHandler.Admin)
			if cfg.Admin.AnalyticsEnabled {
				admin.GET("/analytics", dashboardHandler.Analytics)
			}

			admin.GET("/students", studentsHandler.List)
			admin.PUT("/students/filters", studentsHandler.SetFilter)
			admin.POST("/students/filters/apply", studentsHandler.ApplyFilters)
			admin.DELETE("/students/filters", studentsHandler.ClearFilters)
			admin.PUT("/students/page", studentsHandler.SetPage)

			admin.GET("/sessions", sessionsHandler.List)
			admin.PUT("/sessions/filters", sessionsHandler.SetFilter)
			admin.POST("/sessions/filters/apply", sessionsHandler.ApplyFilters)
			admin.DELETE("/sessions/filters", sessionsHandler.ClearFilters)
			admin.PUT("/sessions/page", sessionsHandler.SetPage)

			admin.GET("/leaderboard", leaderboardHandler.View)
			admin.PUT("/leaderboard/filters", leaderboardHandler.SetFilter)
			admin.POST("/leaderboard/filters/apply", leaderboardHandler.ApplyFilters)
			admin.DELETE("/leaderboard/filters", leaderboardHandler.ClearFilters)
			admin.PUT("/leaderboard/page", leaderboardHandler.SetPage)
			admin.GET("/leaderboard/options", leaderboardHandler.FilterOptions)
			admin.GET("/leaderboard/export", leaderboardHandler.Export)

			admin.POST("/questions", questionsHandler.Create)
			admin.POST("/questions/bulk", questionsHandler.BulkUpload)
			admin.GET("/questions/sample", questionsHandler.SampleCSV)
			admin.GET("/questions/options", questionsHandler.Options)

			admin.POST("/imports/students", importsHandler.ImportStudents)
			admin.GET("/imports/students/sample", importsHandler.SampleCSV)

			admin.POST("/mapping", mappingHandler.Create)
			admin.GET("/mapping/universities", mappingHandler.Universities)
			admin.GET("/mapping/programs", mappingHandler.Programs)
			admin.GET("/mapping/batches", mappingHandler.Batches)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("console starting", "addr", addr, "env", cfg.Env, "admin_enabled", cfg.Admin.Enabled)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("console failed", "error", err)
	}
}

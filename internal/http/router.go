package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ai_calls_platform/backend/internal/config"
	"github.com/ai_calls_platform/backend/internal/http/handlers"
	"github.com/ai_calls_platform/backend/internal/http/middleware"
	"github.com/ai_calls_platform/backend/internal/service"

	_ "github.com/ai_calls_platform/backend/docs"
)

func Router(cfg config.Config, calls *service.CallService, analysis *service.AnalysisService, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" || cfg.CORSAllowed == "" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Calls:     calls,
		Analysis:  analysis,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/", h.Root)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/calls", h.CallsList)
		api.GET("/calls/stats", h.CallsStats)
		api.GET("/calls/:recordingId", h.CallDetails)
		api.GET("/calls/:recordingId/audio", h.CallAudio)
		api.POST("/calls/:recordingId/analyze", h.AnalyzeCall)
		api.POST("/calls/analyze/batch", h.AnalyzeBatch)
		api.GET("/schema/metadata", h.MetadataSchema)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

package routes

import (
	"net/http"

	_ "turnover_service/docs"
	"turnover_service/internal/adapter/http/handlers"
	"turnover_service/internal/adapter/http/middleware"
	"turnover_service/pkg/logger"
	"turnover_service/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIPrefix is the alternate mount point for every route.
const APIPrefix = "/api"

type Handlers struct {
	Quote      *handlers.QuoteHandler
	Job        *handlers.JobHandler
	LinenOrder *handlers.LinenOrderHandler
	System     *handlers.SystemHandler
}

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics
	// MetricsPath and MetricsHandler expose the registry; skipped when the
	// handler is nil.
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter builds the gin engine with middleware, resource routes mounted at
// the root and under /api, docs, metrics and the JSON 404 fallback.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.MetricsHandler != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	for _, rg := range []*gin.RouterGroup{&router.RouterGroup, router.Group(APIPrefix)} {
		addSystemRoutes(rg, h.System)
		addResourceRoutes(rg, h)
	}

	router.NoRoute(h.System.NotFound)
	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
}

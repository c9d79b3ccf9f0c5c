package routes

import (
	"turnover_service/internal/adapter/http/handlers"
	"turnover_service/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathJobs        = "/jobs"
	PathLinenOrders = "/linen/orders"
)

func addSystemRoutes(rg *gin.RouterGroup, h *handlers.SystemHandler) {
	rg.GET("", h.Root)
	rg.GET("/health", h.Health)
}

func addResourceRoutes(rg *gin.RouterGroup, h Handlers) {
	resources := rg.Group("", middleware.RequireJSON())

	quotes := resources.Group(PathQuotes)
	{
		quotes.POST("", h.Quote.CreateQuote)
		quotes.GET("/:id", h.Quote.GetQuote)
		quotes.GET("/:id/pdf", h.Quote.GetQuotePDF)
	}

	jobs := resources.Group(PathJobs)
	{
		jobs.POST("", h.Job.CreateJob)
		jobs.GET("/:id", h.Job.GetJob)
		jobs.PATCH("/:id/checklist", h.Job.UpdateChecklist)
	}

	linen := resources.Group(PathLinenOrders)
	{
		linen.POST("", h.LinenOrder.CreateLinenOrder)
		linen.GET("/:id", h.LinenOrder.GetLinenOrder)
	}
}

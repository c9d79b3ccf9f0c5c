package handlers

import (
	"net/http"

	response "turnover_service/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the greeting, health and fallback routes.
type SystemHandler struct {
	service string
	env     string
}

func NewSystemHandler(service, env string) *SystemHandler {
	return &SystemHandler{service: service, env: env}
}

func (h *SystemHandler) greeting() string {
	return h.service + " is running"
}

// Root answers with JSON when the client asks for it and plain text otherwise.
func (h *SystemHandler) Root(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEPlain, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, response.GreetingResponse{OK: true, Message: h.greeting(), Service: h.service})
		return
	}
	c.String(http.StatusOK, h.greeting())
}

// Health godoc
// @Summary  Liveness check
// @Tags     system
// @Produce  json
// @Success  200 {object} response.HealthResponse
// @Router   /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{OK: true, Env: h.env, Service: h.service})
}

func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.NotFoundResponse{OK: false, Error: "Not Found", Path: c.Request.URL.Path})
}

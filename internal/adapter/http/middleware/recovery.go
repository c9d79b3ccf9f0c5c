package middleware

import (
	"net/http"

	"turnover_service/pkg"
	"turnover_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts a panic into the standard 500 error body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal Server Error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

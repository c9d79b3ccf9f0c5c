package middleware

import (
	"mime"
	"net/http"
	"strings"

	"turnover_service/pkg"

	"github.com/gin-gonic/gin"
)

var errUnsupportedMediaType = pkg.NewDomainErrorSimple(
	"UNSUPPORTED_MEDIA_TYPE",
	"Content-Type must be application/json",
	http.StatusUnsupportedMediaType,
)

// RequireJSON rejects requests that carry a body-bearing method without a
// JSON content type. GET, HEAD and OPTIONS pass through untouched.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if !isJSONMediaType(c.GetHeader("Content-Type")) {
			c.AbortWithStatusJSON(errUnsupportedMediaType.HTTPStatus, errUnsupportedMediaType.ToHTTPError())
			return
		}
		c.Next()
	}
}

func isJSONMediaType(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

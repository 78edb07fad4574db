package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/models/dto"
)

// Media types accepted for request bodies
const (
	MIMEJSON      = "application/json"
	MIMEJSONPatch = "application/json-patch+json"
)

// AcceptContentTypes rejects request bodies declared with any other media type.
// Requests without a Content-Type header are let through.
func AcceptContentTypes(types ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[strings.ToLower(t)] = true
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Content-Type")
		if header == "" {
			c.Next()
			return
		}

		mediaType, _, err := mime.ParseMediaType(header)
		if err != nil || !allowed[strings.ToLower(mediaType)] {
			detail := dto.NewErrorDetail(dto.ErrorCodeMalformedBody, "Unsupported content type").
				WithDetails(map[string]interface{}{"accepted": types})
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.NewErrorResponse(detail))
			return
		}
		c.Next()
	}
}

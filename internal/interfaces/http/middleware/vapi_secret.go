package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// VapiSecretHeader is the header the voice platform sends when a server
// secret is configured for the assistant.
const VapiSecretHeader = "X-Vapi-Secret"

// VapiSecret rejects webhook requests whose X-Vapi-Secret header does not
// match secret. An empty secret disables the check.
func VapiSecret(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	expected := []byte(secret)

	return func(c *gin.Context) {
		got := []byte(c.GetHeader(VapiSecretHeader))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			logger.L(c.Request.Context()).Warn("Rejected webhook with invalid secret",
				zap.Bool("header_present", len(got) > 0))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"Invalid webhook secret",
				requestIDFromContext(c),
			))
			return
		}
		c.Next()
	}
}

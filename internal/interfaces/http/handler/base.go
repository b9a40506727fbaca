package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicewaiter/backend/internal/domain/shared"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
	"github.com/voicewaiter/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.GinRequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, detail string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, detail, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, detail string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, detail)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, detail string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, detail)
}

// UpstreamError sends a 500 for a failed commerce platform call. The
// underlying error is logged, never returned to the client.
func (h *BaseHandler) UpstreamError(c *gin.Context, detail string, err error) {
	logger.L(c.Request.Context()).Error(detail, zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeUpstream, detail)
}

// HandleError converts domain errors to their mapped status. Anything else
// is treated as an upstream failure described by fallback.
func (h *BaseHandler) HandleError(c *gin.Context, err error, fallback string) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	h.UpstreamError(c, fallback, err)
}

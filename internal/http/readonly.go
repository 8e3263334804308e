package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadOnlyMiddleware blocks write operations.
// Read-only operations (GET, HEAD, OPTIONS) are always allowed.
type ReadOnlyMiddleware struct {
	enabled bool
}

// NewReadOnlyMiddleware creates a read-only middleware.
func NewReadOnlyMiddleware(enabled bool) *ReadOnlyMiddleware {
	return &ReadOnlyMiddleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *ReadOnlyMiddleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that rejects writes with 403.
func (m *ReadOnlyMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Error: "the catalog is read-only",
			Code:  "read_only",
		})
	}
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"portfolio_admin/internal/models"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

const (
	errTokenRequired = "Access token required"
	errTokenInvalid  = "Invalid token"
)

// requireAuth rejects requests without a valid bearer token: 401 when
// absent, 403 when it fails verification. With allowQuery the token may
// also come from the "token" query parameter.
func (h *Handler) requireAuth(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errTokenRequired})
			return
		}

		principal, err := h.services.ParseToken(token)
		if err != nil {
			h.log.Infow("auth_token_rejected", "path", c.FullPath(), "err", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errTokenInvalid})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>"; anything else yields "".
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// principalFrom returns the admin attached by requireAuth.
func principalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// limitBody caps the request body size.
func (h *Handler) limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// requestLogger logs one line per request after it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Infow("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
		"client_ip", c.ClientIP(),
	)
}

package handlers

import (
	"errors"
	"net/http"

	"portfolio_admin/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the credential payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

const (
	errInvalidCredentials = "Invalid credentials"
	errInternal           = "Internal server error"
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	admin, err := h.services.Verify(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Infow("auth_login_failed", "username", input.Username)
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "auth_login_error", err, "username", input.Username)
		return
	}

	token, err := h.services.IssueToken(admin)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "auth_issue_token_failed", err, "username", admin.Username)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Username: admin.Username})
}

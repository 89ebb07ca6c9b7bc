package handlers

import (
	"errors"
	"net/http"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errSubmitMessage  = "Failed to send message"
	errListMessages   = "Failed to fetch messages"
	errUpdateStatus   = "Failed to update message status"
	errSendEmail      = "Failed to send email"
	errMessageMissing = "Message not found"

	msgMessageSent = "Message sent successfully"
	msgEmailSent   = "Email sent successfully"
)

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Phone   string `json:"phone,omitempty" example:"+1 555 0100"`
	Message string `json:"message" example:"I'd like a quote for a clinic fit-out."`
}

// StatusRequest moves a message through unread, read and responded.
type StatusRequest struct {
	Status string `json:"status" example:"read" enums:"unread,read,responded"`
}

// RespondRequest carries the reply mailed to the visitor.
type RespondRequest struct {
	Response string `json:"response" example:"Thanks for reaching out."`
}

// @Summary      Submit contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      ContactRequest  true  "Message"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact [post]
func (h *Handler) submitContact(c *gin.Context) {
	var req ContactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	m, err := h.services.Submit(c.Request.Context(), models.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSubmitMessage, "contact_submit_failed", err)
		return
	}
	h.log.Infow("contact_submitted", "id", m.ID)
	c.JSON(http.StatusCreated, gin.H{"message": msgMessageSent})
}

// @Summary      List contact messages
// @Description  Newest first.
// @Tags         contact
// @Produce      json
// @Success      200  {array}   models.ContactMessage
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/contact [get]
// @Security     BearerAuth
func (h *Handler) listMessages(c *gin.Context) {
	msgs, err := h.services.ListMessages(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListMessages, "contact_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// @Summary      Update message status
// @Description  Status may stay the same or move forward only.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Message ID"
// @Param        body  body      StatusRequest  true  "New status"
// @Success      200   {object}  models.ContactMessage
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMessageStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	m, err := h.services.UpdateStatus(c.Request.Context(), id, models.MessageStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMessageMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateStatus, "contact_status_failed", err, "id", id, "status", req.Status)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Respond to message
// @Description  Mails the response to the sender and marks the message responded.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Message ID"
// @Param        body  body      RespondRequest  true  "Reply"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact/{id}/respond [post]
// @Security     BearerAuth
func (h *Handler) respondToMessage(c *gin.Context) {
	id := c.Param("id")
	var req RespondRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Respond(c.Request.Context(), id, req.Response); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMessageMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSendEmail, "contact_respond_failed", err, "id", id)
		return
	}
	if admin, ok := principalFrom(c); ok {
		h.log.Infow("contact_responded", "id", id, "admin", admin.Username)
	}
	c.JSON(http.StatusOK, gin.H{"message": msgEmailSent})
}

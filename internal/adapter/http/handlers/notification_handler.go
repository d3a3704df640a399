package handlers

import (
	"errors"
	"log"
	"net/http"

	request "taller360/internal/adapter/http/dto/request"
	response "taller360/internal/adapter/http/dto/response"
	"taller360/internal/usecase"
	"taller360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)

// NotificationHandler handles HTTP requests for WhatsApp notifications and
// their templates.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendMessage renders the template and submits the message to the delivery
// channel. A channel failure still leaves a failed message row behind, so 502
// responses are trackable.
func (h *NotificationHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}
	log.Printf("[notification][handler] send start owner_id=%s template_id=%s", payload.OwnerID, payload.TemplateID)

	msg, err := h.usecase.SendMessage(c.Request.Context(), usecase.SendMessageCommand{
		OwnerID:     payload.OwnerID,
		OrderID:     payload.OrderID,
		TemplateID:  payload.TemplateID,
		PhoneNumber: payload.PhoneNumber,
		Variables:   payload.Variables,
	})
	if err != nil {
		log.Printf("[notification][handler] send failed owner_id=%s err=%v", payload.OwnerID, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[notification][handler] send success message_id=%s status=%s", msg.ID, msg.Status)

	c.JSON(http.StatusCreated, response.FromMessage(msg))
}

func (h *NotificationHandler) GetMessage(c *gin.Context) {
	msg, err := h.usecase.GetMessageByID(c.Request.Context(), c.Param("message_id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMessage(msg))
}

func (h *NotificationHandler) ListMessagesByOwner(c *gin.Context) {
	messages, err := h.usecase.ListMessagesByOwnerID(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMessages(messages))
}

func (h *NotificationHandler) CreateTemplate(c *gin.Context) {
	var payload request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.CreateTemplate(c.Request.Context(), usecase.CreateTemplateCommand{
		Name:      payload.Name,
		Content:   payload.Content,
		Variables: payload.Variables,
		Category:  payload.Category,
	})
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTemplate(tpl))
}

func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	templates, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTemplates(templates))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidMessageID),
		errors.Is(err, usecase.ErrInvalidTemplateID),
		errors.Is(err, usecase.ErrInvalidTemplateName),
		errors.Is(err, usecase.ErrInvalidTemplateContent),
		errors.Is(err, usecase.ErrInvalidPhoneNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateInactive):
		return pkg.NewDomainErrorSimple("TEMPLATE_INACTIVE", "Template is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrOwnerNotFound):
		return pkg.NewDomainErrorSimple("OWNER_NOT_FOUND", "Owner not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConsentRequired):
		return pkg.NewDomainErrorSimple("CONSENT_REQUIRED", "Owner has not consented to WhatsApp notifications", http.StatusConflict)
	case errors.Is(err, usecase.ErrMessageNotFound):
		return pkg.NewDomainErrorSimple("MESSAGE_NOT_FOUND", "Message not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChannelSend):
		return pkg.NewDomainError("CHANNEL_ERROR", "Delivery channel rejected the message", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"

	"taller360/internal/usecase"
	"taller360/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives delivery-status callbacks from the WhatsApp channel
// (Twilio form-encoded posts).
//
// The provider retries callbacks that are not acknowledged, so every path in
// here answers 200: bad signatures and unknown messages are logged and
// skipped, never surfaced.

type WebhookHandler struct {
	usecase usecase.INotificationUseCase
	gateway interfaces.IMessageGateway
}

func NewWebhookHandler(uc usecase.INotificationUseCase, gateway interfaces.IMessageGateway) *WebhookHandler {
	return &WebhookHandler{usecase: uc, gateway: gateway}
}

func (h *WebhookHandler) HandleStatusCallback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		log.Printf("[webhook][handler] form parse failed err=%v", err)
		c.Status(http.StatusOK)
		return
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for key := range c.Request.PostForm {
		params[key] = c.Request.PostForm.Get(key)
	}

	if h.gateway == nil {
		log.Printf("[webhook][handler] no gateway configured; callback ignored")
		c.Status(http.StatusOK)
		return
	}

	signature := c.GetHeader("X-Twilio-Signature")
	if !h.gateway.ValidateCallback(callbackURL(c), params, signature) {
		log.Printf("[webhook][handler] signature validation failed message_sid=%s; update skipped", params["MessageSid"])
		c.Status(http.StatusOK)
		return
	}

	upd := usecase.WebhookStatusUpdate{
		ExternalID:     params["MessageSid"],
		ProviderStatus: params["MessageStatus"],
		ErrorCode:      params["ErrorCode"],
		ErrorMessage:   params["ErrorMessage"],
	}
	if err := h.usecase.ReconcileWebhook(c.Request.Context(), upd); err != nil {
		// Acknowledge anyway; the row stays behind for operator review.
		log.Printf("[webhook][handler] reconcile failed message_sid=%s status=%s err=%v", upd.ExternalID, upd.ProviderStatus, err)
	}

	c.Status(http.StatusOK)
}

// callbackURL returns the URL the provider signed. Behind a proxy the
// request's own scheme/host are unreliable, so the configured public callback
// URL wins when present.
func callbackURL(c *gin.Context) string {
	if configured := strings.TrimSpace(os.Getenv("WHATSAPP_STATUS_CALLBACK_URL")); configured != "" {
		return configured
	}

	scheme := c.GetHeader("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}

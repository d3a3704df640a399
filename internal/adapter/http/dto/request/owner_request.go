package request

// CreateOwnerRequest registers a vehicle owner. whatsapp_consent records the
// owner's opt-in for outbound notifications.
type CreateOwnerRequest struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email"`
	WhatsAppConsent bool   `json:"whatsapp_consent"`
}

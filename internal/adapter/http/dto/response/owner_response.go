package response

import (
	"time"

	"taller360/internal/domain/entities"
)

type OwnerResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	WhatsAppConsent bool      `json:"whatsapp_consent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromOwner(o entities.Owner) OwnerResponse {
	return OwnerResponse{
		ID:              o.ID,
		Name:            o.Name,
		Phone:           o.Phone,
		Email:           o.Email,
		WhatsAppConsent: o.WhatsAppConsent,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

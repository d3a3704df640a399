package entities

import "time"

// Owner is a vehicle owner. WhatsAppConsent gates outbound notifications: no
// message is sent to an owner who has not opted in.
//
// Storage model (DynamoDB):
//   - PK: id

type Owner struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	WhatsAppConsent bool      `json:"whatsapp_consent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

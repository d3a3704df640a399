package response

import (
	"time"

	"taller360/internal/domain/entities"
)

type MessageResponse struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	OrderID      string     `json:"order_id,omitempty"`
	TemplateID   string     `json:"template_id"`
	Content      string     `json:"content"`
	PhoneNumber  string     `json:"phone_number"`
	Status       string     `json:"status"`
	ExternalID   string     `json:"external_id,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromMessage(m entities.WhatsAppMessage) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		OrderID:      m.OrderID,
		TemplateID:   m.TemplateID,
		Content:      m.Content,
		PhoneNumber:  m.PhoneNumber,
		Status:       string(m.Status),
		ExternalID:   m.ExternalID,
		SentAt:       m.SentAt,
		DeliveredAt:  m.DeliveredAt,
		ReadAt:       m.ReadAt,
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    m.CreatedAt,
	}
}

func FromMessages(messages []entities.WhatsAppMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, FromMessage(m))
	}
	return out
}

type TemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables,omitempty"`
	Active    bool      `json:"active"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTemplate(t entities.WhatsAppTemplate) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Content:   t.Content,
		Variables: t.Variables,
		Active:    t.Active,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTemplates(templates []entities.WhatsAppTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, FromTemplate(t))
	}
	return out
}

package request

// SendMessageRequest triggers one outbound WhatsApp notification. phone_number
// defaults to the owner's registered phone when omitted; order_id is optional
// linkage for the order timeline.
type SendMessageRequest struct {
	OwnerID     string            `json:"owner_id" binding:"required"`
	OrderID     string            `json:"order_id"`
	TemplateID  string            `json:"template_id" binding:"required"`
	PhoneNumber string            `json:"phone_number"`
	Variables   map[string]string `json:"variables"`
}

// CreateTemplateRequest registers a reusable message shape with {{variable}}
// placeholders.
type CreateTemplateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Variables []string `json:"variables"`
	Category  string   `json:"category"`
}

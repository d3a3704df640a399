package entities

import (
	"strings"
	"time"
)

// WhatsAppTemplate is a reusable message shape with {{variable}} placeholders.
// Content is copied into each message at send time, so later template edits do
// not retroactively change sent messages.
//
// Storage model (DynamoDB):
//   - PK: id

type WhatsAppTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables"`
	Active    bool      `json:"active"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RenderTemplate substitutes every {{name}} occurrence in content with
// variables[name]. Placeholder matching is case-sensitive and does not nest.
// Unresolved placeholders are left verbatim rather than treated as errors, so
// a missing variable is visible in the outgoing text instead of silently
// dropping the message.
func RenderTemplate(t WhatsAppTemplate, variables map[string]string) string {
	rendered := t.Content
	for name, value := range variables {
		rendered = strings.ReplaceAll(rendered, "{{"+name+"}}", value)
	}
	return rendered
}

package entities

import "time"

// MessageStatus is the delivery lifecycle of an outbound WhatsApp message:
//
//	pending → sent → delivered → read
//
// failed is reachable from pending or sent. read and failed are terminal.
// Provider callbacks may arrive duplicated or out of order; ApplyProviderStatus
// only ever advances the status forward.

type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusFailed    MessageStatus = "failed"
)

var messageStatusRank = map[MessageStatus]int{
	MessageStatusPending:   0,
	MessageStatusSent:      1,
	MessageStatusDelivered: 2,
	MessageStatusRead:      3,
}

// IsTerminal reports whether no further transition is modeled from s.
func (s MessageStatus) IsTerminal() bool {
	return s == MessageStatusRead || s == MessageStatusFailed
}

// CanAdvanceTo reports whether moving from s to next is a forward transition.
func (s MessageStatus) CanAdvanceTo(next MessageStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == MessageStatusFailed {
		return s == MessageStatusPending || s == MessageStatusSent
	}
	return messageStatusRank[next] > messageStatusRank[s]
}

// MessageStatusFromProvider translates the delivery channel's status vocabulary
// into the internal enum. Unknown values report ok=false and are ignored by the
// webhook reconciler.
func MessageStatusFromProvider(providerStatus string) (MessageStatus, bool) {
	switch providerStatus {
	case "queued", "sending", "accepted":
		return MessageStatusPending, true
	case "sent":
		return MessageStatusSent, true
	case "delivered":
		return MessageStatusDelivered, true
	case "read":
		return MessageStatusRead, true
	case "failed", "undelivered":
		return MessageStatusFailed, true
	}
	return "", false
}

// WhatsAppMessage is one outbound notification instance. Created pending with
// the already-rendered content; mutated only by the send path (sent/failed) and
// by webhook reconciliation. The local row is the source of truth for tracking,
// not the provider response.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_id-index): external_id
//   - GSI2 (owner_id-index): owner_id

type WhatsAppMessage struct {
	ID           string        `json:"id"`
	OwnerID      string        `json:"owner_id"`
	OrderID      string        `json:"order_id,omitempty"`
	TemplateID   string        `json:"template_id"`
	Content      string        `json:"content"`
	PhoneNumber  string        `json:"phone_number"`
	Status       MessageStatus `json:"status"`
	ExternalID   string        `json:"external_id,omitempty"`
	SentAt       *time.Time    `json:"sent_at,omitempty"`
	DeliveredAt  *time.Time    `json:"delivered_at,omitempty"`
	ReadAt       *time.Time    `json:"read_at,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// MessageStatusUpdate is an idempotent webhook-driven mutation. Status carries
// the (possibly unchanged) target status; the timestamp pointers are stamped
// with if-not-exists semantics so replayed callbacks do not move them.
type MessageStatusUpdate struct {
	MessageID    string
	Status       MessageStatus
	SentAt       *time.Time
	DeliveredAt  *time.Time
	ReadAt       *time.Time
	ErrorMessage string
}

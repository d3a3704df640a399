package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"taller360/internal/domain/entities"
	"taller360/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMessageID       = errors.New("invalid message id")
	ErrMessageNotFound        = errors.New("message not found")
	ErrInvalidTemplateID      = errors.New("invalid template id")
	ErrInvalidTemplateName    = errors.New("invalid template name")
	ErrInvalidTemplateContent = errors.New("invalid template content")
	ErrTemplateNotFound       = errors.New("template not found")
	ErrTemplateInactive       = errors.New("template is inactive")
	ErrConsentRequired        = errors.New("owner has not consented to whatsapp notifications")
	ErrInvalidPhoneNumber     = errors.New("invalid phone number")
	ErrChannelSend            = errors.New("delivery channel send failed")
)

// SendMessageCommand is the input for one outbound WhatsApp notification.
// PhoneNumber defaults to the owner's phone when empty. OrderID is optional
// linkage for the order timeline.
type SendMessageCommand struct {
	OwnerID     string
	OrderID     string
	TemplateID  string
	PhoneNumber string
	Variables   map[string]string
}

// CreateTemplateCommand registers a reusable message shape.
type CreateTemplateCommand struct {
	Name      string
	Content   string
	Variables []string
	Category  string
}

// WebhookStatusUpdate is the normalized payload of one provider status
// callback.
type WebhookStatusUpdate struct {
	ExternalID     string
	ProviderStatus string
	ErrorCode      string
	ErrorMessage   string
}

// INotificationUseCase renders templates, submits messages to the delivery
// channel and reconciles message rows against provider callbacks.

type INotificationUseCase interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (entities.WhatsAppMessage, error)
	ReconcileWebhook(ctx context.Context, upd WebhookStatusUpdate) error
	GetMessageByID(ctx context.Context, id string) (entities.WhatsAppMessage, error)
	ListMessagesByOwnerID(ctx context.Context, ownerID string) ([]entities.WhatsAppMessage, error)
	CreateTemplate(ctx context.Context, cmd CreateTemplateCommand) (entities.WhatsAppTemplate, error)
	ListTemplates(ctx context.Context) ([]entities.WhatsAppTemplate, error)
}

type NotificationUseCase struct {
	messages  interfaces.IWhatsAppMessageRepository
	templates interfaces.IWhatsAppTemplateRepository
	owners    interfaces.IOwnerRepository
	gateway   interfaces.IMessageGateway
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	messages interfaces.IWhatsAppMessageRepository,
	templates interfaces.IWhatsAppTemplateRepository,
	owners interfaces.IOwnerRepository,
	gateway interfaces.IMessageGateway,
) *NotificationUseCase {
	return &NotificationUseCase{messages: messages, templates: templates, owners: owners, gateway: gateway}
}

func (u *NotificationUseCase) SendMessage(ctx context.Context, cmd SendMessageCommand) (entities.WhatsAppMessage, error) {
	ownerID := strings.TrimSpace(cmd.OwnerID)
	if ownerID == "" {
		return entities.WhatsAppMessage{}, ErrInvalidOwnerID
	}
	templateID := strings.TrimSpace(cmd.TemplateID)
	if templateID == "" {
		return entities.WhatsAppMessage{}, ErrInvalidTemplateID
	}

	tpl, err := u.templates.GetByID(ctx, templateID)
	if err != nil {
		return entities.WhatsAppMessage{}, err
	}
	if tpl.ID == "" {
		return entities.WhatsAppMessage{}, ErrTemplateNotFound
	}
	if !tpl.Active {
		return entities.WhatsAppMessage{}, ErrTemplateInactive
	}

	owner, err := u.owners.GetByID(ctx, ownerID)
	if err != nil {
		return entities.WhatsAppMessage{}, err
	}
	if owner.ID == "" {
		return entities.WhatsAppMessage{}, ErrOwnerNotFound
	}
	if !owner.WhatsAppConsent {
		return entities.WhatsAppMessage{}, ErrConsentRequired
	}

	phone := strings.TrimSpace(cmd.PhoneNumber)
	if phone == "" {
		phone = strings.TrimSpace(owner.Phone)
	}
	if phone == "" {
		return entities.WhatsAppMessage{}, ErrInvalidPhoneNumber
	}

	rendered := entities.RenderTemplate(tpl, cmd.Variables)

	// The pending row is written before the channel call so the message is
	// trackable even if the call never returns a usable response.
	now := time.Now().UTC()
	msg := entities.WhatsAppMessage{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		OrderID:     strings.TrimSpace(cmd.OrderID),
		TemplateID:  templateID,
		Content:     rendered,
		PhoneNumber: phone,
		Status:      entities.MessageStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	msg, err = u.messages.Create(ctx, msg)
	if err != nil {
		return entities.WhatsAppMessage{}, err
	}
	log.Printf("[notification][usecase] message created message_id=%s owner_id=%s template_id=%s", msg.ID, ownerID, templateID)

	externalID, sendErr := u.gateway.SendMessage(ctx, phone, rendered)
	if sendErr != nil {
		log.Printf("[notification][usecase] channel send failed message_id=%s err=%v", msg.ID, sendErr)
		if markErr := u.messages.MarkFailed(ctx, msg.ID, sendErr.Error()); markErr != nil {
			log.Printf("[notification][usecase] mark-failed write failed message_id=%s err=%v", msg.ID, markErr)
		}
		msg.Status = entities.MessageStatusFailed
		msg.ErrorMessage = sendErr.Error()
		return msg, fmt.Errorf("%w: %v", ErrChannelSend, sendErr)
	}

	sentAt := time.Now().UTC()
	if markErr := u.messages.MarkSent(ctx, msg.ID, externalID, sentAt); markErr != nil {
		// The channel already accepted the message; the row stays pending and
		// the provider webhook will reconcile it. Logged, not fatal.
		log.Printf("[notification][usecase] mark-sent write failed message_id=%s external_id=%s err=%v", msg.ID, externalID, markErr)
	}
	msg.Status = entities.MessageStatusSent
	msg.ExternalID = externalID
	msg.SentAt = &sentAt
	log.Printf("[notification][usecase] message sent message_id=%s external_id=%s", msg.ID, externalID)
	return msg, nil
}

func (u *NotificationUseCase) ReconcileWebhook(ctx context.Context, upd WebhookStatusUpdate) error {
	externalID := strings.TrimSpace(upd.ExternalID)
	if externalID == "" {
		log.Printf("[notification][usecase] webhook without external id; skipping")
		return nil
	}

	status, ok := entities.MessageStatusFromProvider(strings.ToLower(strings.TrimSpace(upd.ProviderStatus)))
	if !ok {
		log.Printf("[notification][usecase] unknown provider status %q external_id=%s; skipping", upd.ProviderStatus, externalID)
		return nil
	}

	msg, err := u.messages.GetByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if msg.ID == "" {
		// The provider may replay a status for a message this system never
		// tracked. Acknowledge as a no-op so it stops retrying.
		log.Printf("[notification][usecase] webhook for unknown message external_id=%s status=%s; no-op", externalID, status)
		return nil
	}

	target := msg.Status
	if msg.Status.CanAdvanceTo(status) {
		target = status
	}

	now := time.Now().UTC()
	change := entities.MessageStatusUpdate{MessageID: msg.ID, Status: target}
	changed := target != msg.Status

	// Timestamps are stamped for the reported event even when the status does
	// not advance (a late "delivered" after "read" still records delivered_at),
	// but never re-stamped.
	switch status {
	case entities.MessageStatusSent:
		if msg.SentAt == nil {
			change.SentAt = &now
			changed = true
		}
	case entities.MessageStatusDelivered:
		if msg.DeliveredAt == nil {
			change.DeliveredAt = &now
			changed = true
		}
	case entities.MessageStatusRead:
		if msg.ReadAt == nil {
			change.ReadAt = &now
			changed = true
		}
	case entities.MessageStatusFailed:
		if target == entities.MessageStatusFailed && msg.ErrorMessage == "" {
			change.ErrorMessage = providerErrorText(upd.ErrorCode, upd.ErrorMessage)
			changed = true
		}
	}

	if !changed {
		log.Printf("[notification][usecase] webhook replay message_id=%s status=%s; no-op", msg.ID, status)
		return nil
	}

	if err := u.messages.ApplyStatusUpdate(ctx, change); err != nil {
		return err
	}
	log.Printf("[notification][usecase] webhook reconciled message_id=%s external_id=%s status=%s->%s", msg.ID, externalID, msg.Status, target)
	return nil
}

func (u *NotificationUseCase) GetMessageByID(ctx context.Context, id string) (entities.WhatsAppMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WhatsAppMessage{}, ErrInvalidMessageID
	}

	m, err := u.messages.GetByID(ctx, id)
	if err != nil {
		return entities.WhatsAppMessage{}, err
	}
	if m.ID == "" {
		return entities.WhatsAppMessage{}, ErrMessageNotFound
	}
	return m, nil
}

func (u *NotificationUseCase) ListMessagesByOwnerID(ctx context.Context, ownerID string) ([]entities.WhatsAppMessage, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.messages.ListByOwnerID(ctx, ownerID)
}

func (u *NotificationUseCase) CreateTemplate(ctx context.Context, cmd CreateTemplateCommand) (entities.WhatsAppTemplate, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.WhatsAppTemplate{}, ErrInvalidTemplateName
	}
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return entities.WhatsAppTemplate{}, ErrInvalidTemplateContent
	}

	now := time.Now().UTC()
	t := entities.WhatsAppTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		Variables: cmd.Variables,
		Active:    true,
		Category:  strings.TrimSpace(cmd.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.templates.Create(ctx, t)
	if err != nil {
		return entities.WhatsAppTemplate{}, err
	}
	log.Printf("[notification][usecase] template created template_id=%s name=%s", created.ID, name)
	return created, nil
}

func (u *NotificationUseCase) ListTemplates(ctx context.Context) ([]entities.WhatsAppTemplate, error) {
	return u.templates.List(ctx)
}

func providerErrorText(code, message string) string {
	code = strings.TrimSpace(code)
	message = strings.TrimSpace(message)
	switch {
	case code != "" && message != "":
		return fmt.Sprintf("%s: %s", code, message)
	case code != "":
		return code
	case message != "":
		return message
	default:
		return "delivery failed"
	}
}

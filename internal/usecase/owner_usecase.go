package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"taller360/internal/domain/entities"
	"taller360/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrInvalidOwnerName  = errors.New("invalid owner name")
	ErrInvalidOwnerPhone = errors.New("invalid owner phone")
)

// CreateOwnerCommand registers a vehicle owner.
type CreateOwnerCommand struct {
	Name            string
	Phone           string
	Email           string
	WhatsAppConsent bool
}

type IOwnerUseCase interface {
	CreateOwner(ctx context.Context, cmd CreateOwnerCommand) (entities.Owner, error)
	GetOwner(ctx context.Context, id string) (entities.Owner, error)
}

type OwnerUseCase struct {
	owners interfaces.IOwnerRepository
}

var _ IOwnerUseCase = (*OwnerUseCase)(nil)

func NewOwnerUseCase(owners interfaces.IOwnerRepository) *OwnerUseCase {
	return &OwnerUseCase{owners: owners}
}

func (u *OwnerUseCase) CreateOwner(ctx context.Context, cmd CreateOwnerCommand) (entities.Owner, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Owner{}, ErrInvalidOwnerName
	}
	phone := strings.TrimSpace(cmd.Phone)
	if phone == "" {
		return entities.Owner{}, ErrInvalidOwnerPhone
	}

	now := time.Now().UTC()
	o := entities.Owner{
		ID:              uuid.NewString(),
		Name:            name,
		Phone:           phone,
		Email:           strings.TrimSpace(cmd.Email),
		WhatsAppConsent: cmd.WhatsAppConsent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.owners.Create(ctx, o)
}

func (u *OwnerUseCase) GetOwner(ctx context.Context, id string) (entities.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Owner{}, ErrInvalidOwnerID
	}

	o, err := u.owners.GetByID(ctx, id)
	if err != nil {
		return entities.Owner{}, err
	}
	if o.ID == "" {
		return entities.Owner{}, ErrOwnerNotFound
	}
	return o, nil
}

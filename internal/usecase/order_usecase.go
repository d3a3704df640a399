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
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidVehicleID       = errors.New("invalid vehicle id")
	ErrInvalidBudgetLineID    = errors.New("invalid budget line id")
	ErrBudgetLineNotFound     = errors.New("budget line not found")
	ErrInvalidBudgetLineKind  = errors.New("invalid budget line kind")
	ErrInvalidLineDescription = errors.New("invalid budget line description")
)

// CreateOrderCommand is the intake input for a new order.
type CreateOrderCommand struct {
	OwnerID        string
	VehicleID      string
	CommitmentDate *time.Time
}

// AddBudgetLineCommand adds one billable item to an order. The line total is
// computed here, never supplied by the caller.
type AddBudgetLineCommand struct {
	OrderID     string
	Kind        entities.BudgetLineKind
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	DiscountPct decimal.Decimal
}

// IOrderUseCase exposes order intake and budget management.
//
// Order total counts approved lines only: adding a line leaves the financial
// position untouched until the owner approves it.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	AddBudgetLine(ctx context.Context, cmd AddBudgetLineCommand) (entities.BudgetLine, error)
	ApproveBudgetLine(ctx context.Context, orderID, lineID string) (entities.BudgetLine, error)
	ListBudgetLines(ctx context.Context, orderID string) ([]entities.BudgetLine, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderRepository
	lines  interfaces.IBudgetLineRepository
	owners interfaces.IOwnerRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, lines interfaces.IBudgetLineRepository, owners interfaces.IOwnerRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, lines: lines, owners: owners}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	ownerID := strings.TrimSpace(cmd.OwnerID)
	if ownerID == "" {
		return entities.Order{}, ErrInvalidOwnerID
	}
	vehicleID := strings.TrimSpace(cmd.VehicleID)
	if vehicleID == "" {
		return entities.Order{}, ErrInvalidVehicleID
	}

	owner, err := u.owners.GetByID(ctx, ownerID)
	if err != nil {
		return entities.Order{}, err
	}
	if owner.ID == "" {
		return entities.Order{}, ErrOwnerNotFound
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	o := entities.Order{
		ID:             id,
		Folio:          newFolio(id),
		OwnerID:        ownerID,
		VehicleID:      vehicleID,
		Status:         entities.OrderStatusReception,
		Total:          decimal.Zero,
		AmountPaid:     decimal.Zero,
		PaymentStatus:  entities.PaymentStatusPending,
		CommitmentDate: cmd.CommitmentDate,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] order created order_id=%s folio=%s owner_id=%s", created.ID, created.Folio, ownerID)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) AddBudgetLine(ctx context.Context, cmd AddBudgetLineCommand) (entities.BudgetLine, error) {
	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		return entities.BudgetLine{}, ErrInvalidOrderID
	}
	if cmd.Kind != entities.BudgetLineKindLabor && cmd.Kind != entities.BudgetLineKindPart {
		return entities.BudgetLine{}, ErrInvalidBudgetLineKind
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return entities.BudgetLine{}, ErrInvalidLineDescription
	}

	total, err := entities.ComputeLineTotal(cmd.Quantity, cmd.UnitPrice, cmd.TaxRate, cmd.DiscountPct)
	if err != nil {
		return entities.BudgetLine{}, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.BudgetLine{}, err
	}
	if order.ID == "" {
		return entities.BudgetLine{}, ErrOrderNotFound
	}

	now := time.Now().UTC()
	l := entities.BudgetLine{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		Kind:        cmd.Kind,
		Description: description,
		Quantity:    cmd.Quantity,
		UnitPrice:   cmd.UnitPrice,
		TaxRate:     cmd.TaxRate,
		DiscountPct: cmd.DiscountPct,
		Total:       total,
		Approved:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.lines.Create(ctx, l)
	if err != nil {
		return entities.BudgetLine{}, err
	}
	log.Printf("[order][usecase] budget line added order_id=%s line_id=%s total=%s", orderID, created.ID, created.Total)
	return created, nil
}

func (u *OrderUseCase) ApproveBudgetLine(ctx context.Context, orderID, lineID string) (entities.BudgetLine, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.BudgetLine{}, ErrInvalidOrderID
	}
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.BudgetLine{}, ErrInvalidBudgetLineID
	}

	line, err := u.lines.GetByID(ctx, lineID)
	if err != nil {
		return entities.BudgetLine{}, err
	}
	if line.ID == "" || line.OrderID != orderID {
		return entities.BudgetLine{}, ErrBudgetLineNotFound
	}
	if line.Approved {
		return line, nil
	}

	approved, err := u.lines.SetApproved(ctx, lineID)
	if err != nil {
		return entities.BudgetLine{}, err
	}

	if err := u.recomputeOrderTotal(ctx, orderID); err != nil {
		return entities.BudgetLine{}, err
	}
	log.Printf("[order][usecase] budget line approved order_id=%s line_id=%s", orderID, lineID)
	return approved, nil
}

func (u *OrderUseCase) ListBudgetLines(ctx context.Context, orderID string) ([]entities.BudgetLine, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.lines.ListByOrderID(ctx, orderID)
}

// recomputeOrderTotal re-derives the order total from approved lines and the
// payment status from the new total. Version-conditioned write with bounded
// retries, same as the ledger.
func (u *OrderUseCase) recomputeOrderTotal(ctx context.Context, orderID string) error {
	for attempt := 1; attempt <= ledgerMaxWriteAttempts; attempt++ {
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ID == "" {
			return ErrOrderNotFound
		}

		lines, err := u.lines.ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, l := range lines {
			if l.Approved {
				total = total.Add(l.Total)
			}
		}

		totals := entities.OrderTotals{
			OrderID:         orderID,
			Total:           total,
			AmountPaid:      order.AmountPaid,
			PaymentStatus:   entities.DerivePaymentStatus(total, order.AmountPaid),
			ExpectedVersion: order.Version,
		}
		_, err = u.orders.UpdateTotals(ctx, totals)
		if err == nil {
			log.Printf("[order][usecase] totals recomputed order_id=%s total=%s payment_status=%s", orderID, total, totals.PaymentStatus)
			return nil
		}
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[order][usecase] version conflict order_id=%s attempt=%d", orderID, attempt)
			continue
		}
		return err
	}
	return ErrOrderWriteConflict
}

func newFolio(orderID string) string {
	short := strings.ToUpper(strings.ReplaceAll(orderID, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("OT-%s", short)
}

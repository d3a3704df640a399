package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"taller360/internal/domain/entities"
	"taller360/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOverpaymentRejected  = errors.New("payment exceeds order total")
	ErrOrderWriteConflict   = errors.New("order totals write conflict")
)

// ledgerMaxWriteAttempts bounds optimistic-lock retries when concurrent
// payments race on the same order.
const ledgerMaxWriteAttempts = 3

// RecordPaymentCommand is the input for recording one money-received event.
// AllowOverpayment must be set explicitly when the payment pushes amount_paid
// above the order total.
type RecordPaymentCommand struct {
	OrderID          string
	Amount           decimal.Decimal
	Method           entities.PaymentMethod
	ReferenceNumber  string
	Notes            string
	PaymentDate      time.Time
	AllowOverpayment bool
}

// ILedgerUseCase keeps amount_paid and payment_status consistent with recorded
// payments.
//
// amount_paid is always recomputed as the sum over stored payment rows, never
// incrementally patched, and the payment insert plus the order totals update
// commit in one store transaction.

type ILedgerUseCase interface {
	RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (entities.Payment, error)
	ListPaymentsByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type LedgerUseCase struct {
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRepository
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(orders interfaces.IOrderRepository, payments interfaces.IPaymentRepository) *LedgerUseCase {
	return &LedgerUseCase{orders: orders, payments: payments}
}

func (u *LedgerUseCase) RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error) {
	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if !cmd.Amount.GreaterThan(decimal.Zero) {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if !cmd.Method.IsValid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	now := time.Now().UTC()
	paymentDate := cmd.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	p := entities.Payment{
		ID:              uuid.NewString(),
		OrderID:         orderID,
		Amount:          cmd.Amount.Round(2),
		Method:          cmd.Method,
		ReferenceNumber: strings.TrimSpace(cmd.ReferenceNumber),
		Notes:           strings.TrimSpace(cmd.Notes),
		PaymentDate:     paymentDate.UTC(),
		CreatedAt:       now,
	}

	for attempt := 1; attempt <= ledgerMaxWriteAttempts; attempt++ {
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.Payment{}, err
		}
		if order.ID == "" {
			return entities.Payment{}, ErrOrderNotFound
		}

		existing, err := u.payments.ListByOrderID(ctx, orderID)
		if err != nil {
			return entities.Payment{}, err
		}
		paid := decimal.Zero
		for _, prev := range existing {
			paid = paid.Add(prev.Amount)
		}
		newPaid := paid.Add(p.Amount)

		if newPaid.GreaterThan(order.Total) && !cmd.AllowOverpayment {
			log.Printf("[ledger][usecase] overpayment rejected order_id=%s total=%s would_pay=%s", orderID, order.Total, newPaid)
			return entities.Payment{}, ErrOverpaymentRejected
		}

		totals := entities.OrderTotals{
			OrderID:         orderID,
			Total:           order.Total,
			AmountPaid:      newPaid,
			PaymentStatus:   entities.DerivePaymentStatus(order.Total, newPaid),
			ExpectedVersion: order.Version,
		}

		err = u.payments.AppendToOrder(ctx, p, totals)
		if err == nil {
			log.Printf("[ledger][usecase] payment recorded order_id=%s payment_id=%s amount=%s amount_paid=%s payment_status=%s",
				orderID, p.ID, p.Amount, newPaid, totals.PaymentStatus)
			return p, nil
		}
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[ledger][usecase] version conflict order_id=%s attempt=%d", orderID, attempt)
			continue
		}
		return entities.Payment{}, err
	}

	log.Printf("[ledger][usecase] giving up after %d attempts order_id=%s", ledgerMaxWriteAttempts, orderID)
	return entities.Payment{}, ErrOrderWriteConflict
}

func (u *LedgerUseCase) GetPaymentByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *LedgerUseCase) ListPaymentsByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.payments.ListByOrderID(ctx, orderID)
}

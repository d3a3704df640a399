package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the workshop lifecycle of an order. Transitions are driven by
// the reception/technician UI and are not validated here.

type OrderStatus string

const (
	OrderStatusReception  OrderStatus = "reception"
	OrderStatusDiagnosis  OrderStatus = "diagnosis"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// PaymentStatus is derived from (total, amount_paid) and never set directly.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order is a unit of billable workshop work for one vehicle/owner pair.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary invariants:
//   - Total is the sum of approved budget line totals.
//   - AmountPaid is the sum of all recorded payments for the order.
//   - PaymentStatus = DerivePaymentStatus(Total, AmountPaid).
//
// Version is the optimistic-lock counter bumped on every totals write; the
// ledger conditions its transaction on it so concurrent payment recordings
// cannot commit against the same snapshot.

type Order struct {
	ID             string          `json:"id"`
	Folio          string          `json:"folio"`
	OwnerID        string          `json:"owner_id"`
	VehicleID      string          `json:"vehicle_id"`
	Status         OrderStatus     `json:"status"`
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	CommitmentDate *time.Time      `json:"commitment_date,omitempty"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderTotals is the recomputed financial position written alongside a ledger
// mutation. ExpectedVersion must match the stored order version for the write
// to commit.
type OrderTotals struct {
	OrderID         string
	Total           decimal.Decimal
	AmountPaid      decimal.Decimal
	PaymentStatus   PaymentStatus
	ExpectedVersion int64
}

// DerivePaymentStatus maps a financial position to a payment status.
// It saturates at paid: overpaid orders remain paid.
func DerivePaymentStatus(total, amountPaid decimal.Decimal) PaymentStatus {
	switch {
	case amountPaid.LessThanOrEqual(decimal.Zero):
		return PaymentStatusPending
	case amountPaid.LessThan(total):
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}

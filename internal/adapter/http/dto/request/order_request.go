package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the intake payload for a new work order.
type CreateOrderRequest struct {
	OwnerID        string     `json:"owner_id" binding:"required"`
	VehicleID      string     `json:"vehicle_id" binding:"required"`
	CommitmentDate *time.Time `json:"commitment_date"`
}

// AddBudgetLineRequest adds one billable item to an order's budget. Amounts
// bind through shopspring/decimal, so clients may send them as JSON numbers or
// strings without precision loss.
type AddBudgetLineRequest struct {
	Kind        string          `json:"kind" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

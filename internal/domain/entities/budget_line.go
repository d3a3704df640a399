package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrNegativeUnitPrice  = errors.New("unit price must not be negative")
	ErrTaxRateOutOfRange  = errors.New("tax rate must be between 0 and 1")
	ErrDiscountOutOfRange = errors.New("discount must be between 0 and 1")
)

// BudgetLineKind distinguishes labor from parts on a budget.

type BudgetLineKind string

const (
	BudgetLineKindLabor BudgetLineKind = "labor"
	BudgetLineKindPart  BudgetLineKind = "part"
)

// BudgetLine is one billable item on an order. Total is computed at write time
// via ComputeLineTotal and never patched by hand. Only approved lines count
// toward the order total.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type BudgetLine struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Kind        BudgetLineKind  `json:"kind"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Total       decimal.Decimal `json:"total"`
	Approved    bool            `json:"approved"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

var decimalOne = decimal.NewFromInt(1)

// ComputeLineTotal returns quantity * unitPrice * (1 + taxRate) * (1 - discountPct)
// rounded half-up to 2 decimals. Decimal arithmetic keeps repeated recomputation
// free of cent drift.
func ComputeLineTotal(quantity, unitPrice, taxRate, discountPct decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, ErrNegativeQuantity
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, ErrNegativeUnitPrice
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimalOne) {
		return decimal.Zero, ErrTaxRateOutOfRange
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(decimalOne) {
		return decimal.Zero, ErrDiscountOutOfRange
	}

	total := quantity.
		Mul(unitPrice).
		Mul(decimalOne.Add(taxRate)).
		Mul(decimalOne.Sub(discountPct))
	return total.Round(2), nil
}

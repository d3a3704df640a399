package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how money was received.

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCheck    PaymentMethod = "check"
	PaymentMethodCredit   PaymentMethod = "credit"
)

// IsValid reports whether m is one of the supported methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCheck, PaymentMethodCredit:
		return true
	}
	return false
}

// Payment is one money-received event against an order. Payments are immutable
// once created; the ledger only ever appends.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type Payment struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"method"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	PaymentDate     time.Time       `json:"payment_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

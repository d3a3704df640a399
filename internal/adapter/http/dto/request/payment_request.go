package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest registers one money-received event against an order.
//
// allow_overpayment must be sent explicitly (after a UI-side confirmation)
// when the payment pushes the amount paid above the order total.
type RecordPaymentRequest struct {
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
	Method           string           `json:"method" binding:"required"`
	ReferenceNumber  string           `json:"reference_number"`
	Notes            string           `json:"notes"`
	PaymentDate      *time.Time       `json:"payment_date"`
	AllowOverpayment bool             `json:"allow_overpayment"`
}

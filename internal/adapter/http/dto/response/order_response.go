package response

import (
	"time"

	"taller360/internal/domain/entities"
)

// OrderResponse exposes the order with its derived financial position. Money
// fields are fixed to 2 decimals as strings.
type OrderResponse struct {
	ID             string     `json:"id"`
	Folio          string     `json:"folio"`
	OwnerID        string     `json:"owner_id"`
	VehicleID      string     `json:"vehicle_id"`
	Status         string     `json:"status"`
	Total          string     `json:"total"`
	AmountPaid     string     `json:"amount_paid"`
	PaymentStatus  string     `json:"payment_status"`
	CommitmentDate *time.Time `json:"commitment_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Folio:          o.Folio,
		OwnerID:        o.OwnerID,
		VehicleID:      o.VehicleID,
		Status:         string(o.Status),
		Total:          o.Total.StringFixed(2),
		AmountPaid:     o.AmountPaid.StringFixed(2),
		PaymentStatus:  string(o.PaymentStatus),
		CommitmentDate: o.CommitmentDate,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

type BudgetLineResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	TaxRate     string    `json:"tax_rate"`
	DiscountPct string    `json:"discount_pct"`
	Total       string    `json:"total"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBudgetLine(l entities.BudgetLine) BudgetLineResponse {
	return BudgetLineResponse{
		ID:          l.ID,
		OrderID:     l.OrderID,
		Kind:        string(l.Kind),
		Description: l.Description,
		Quantity:    l.Quantity.String(),
		UnitPrice:   l.UnitPrice.StringFixed(2),
		TaxRate:     l.TaxRate.String(),
		DiscountPct: l.DiscountPct.String(),
		Total:       l.Total.StringFixed(2),
		Approved:    l.Approved,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromBudgetLines(lines []entities.BudgetLine) []BudgetLineResponse {
	out := make([]BudgetLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromBudgetLine(l))
	}
	return out
}

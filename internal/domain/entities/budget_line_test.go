package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeLineTotal(t *testing.T) {
	t.Run("plain quantity times price", func(t *testing.T) {
		total, err := ComputeLineTotal(d("2"), d("150"), d("0"), d("0"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(d("300")) {
			t.Fatalf("expected 300, got %s", total)
		}
	})

	t.Run("tax applied", func(t *testing.T) {
		total, err := ComputeLineTotal(d("1"), d("100"), d("0.16"), d("0"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(d("116")) {
			t.Fatalf("expected 116, got %s", total)
		}
	})

	t.Run("discount applied after tax", func(t *testing.T) {
		total, err := ComputeLineTotal(d("1"), d("100"), d("0.16"), d("0.1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(d("104.40")) {
			t.Fatalf("expected 104.40, got %s", total)
		}
	})

	t.Run("rounds half up to two decimals", func(t *testing.T) {
		// 3 * 9.99 * 1.155 = 34.620... -> recomputing from the same inputs
		// must always yield the same cents.
		total, err := ComputeLineTotal(d("3"), d("9.99"), d("0.155"), d("0"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		again, _ := ComputeLineTotal(d("3"), d("9.99"), d("0.155"), d("0"))
		if !total.Equal(again) {
			t.Fatalf("recomputation drifted: %s vs %s", total, again)
		}
		if total.Exponent() < -2 {
			t.Fatalf("expected at most 2 decimals, got %s", total)
		}
	})

	t.Run("fractional quantity", func(t *testing.T) {
		total, err := ComputeLineTotal(d("1.5"), d("200"), d("0"), d("0"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(d("300")) {
			t.Fatalf("expected 300, got %s", total)
		}
	})

	t.Run("zero quantity yields zero", func(t *testing.T) {
		total, err := ComputeLineTotal(d("0"), d("500"), d("0.16"), d("0.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Fatalf("expected 0, got %s", total)
		}
	})

	t.Run("full discount yields zero", func(t *testing.T) {
		total, err := ComputeLineTotal(d("2"), d("100"), d("0"), d("1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Fatalf("expected 0, got %s", total)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := ComputeLineTotal(d("-1"), d("100"), d("0"), d("0"))
		if !errors.Is(err, ErrNegativeQuantity) {
			t.Fatalf("expected ErrNegativeQuantity, got %v", err)
		}
	})

	t.Run("negative unit price", func(t *testing.T) {
		_, err := ComputeLineTotal(d("1"), d("-100"), d("0"), d("0"))
		if !errors.Is(err, ErrNegativeUnitPrice) {
			t.Fatalf("expected ErrNegativeUnitPrice, got %v", err)
		}
	})

	t.Run("tax rate above one", func(t *testing.T) {
		_, err := ComputeLineTotal(d("1"), d("100"), d("1.01"), d("0"))
		if !errors.Is(err, ErrTaxRateOutOfRange) {
			t.Fatalf("expected ErrTaxRateOutOfRange, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		_, err := ComputeLineTotal(d("1"), d("100"), d("0"), d("-0.1"))
		if !errors.Is(err, ErrDiscountOutOfRange) {
			t.Fatalf("expected ErrDiscountOutOfRange, got %v", err)
		}
	})
}

package checkout_test

import (
	"testing"

	"github.com/medicart/medicart-client/internal/checkout"
	"github.com/medicart/medicart-client/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestShipping(t *testing.T) {

	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{name: "empty cart ships free", subtotal: 0, want: 0},
		{name: "small order pays flat fee", subtotal: 120, want: 45},
		{name: "threshold itself still pays", subtotal: 500, want: 45},
		{name: "just above threshold ships free", subtotal: 501, want: 0},
		{name: "large order ships free", subtotal: 2350.75, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.Shipping(tt.subtotal))
		})
	}
}

func TestSummarize(t *testing.T) {

	t.Run("subtotal sums line totals", func(t *testing.T) {
		// Arrange
		items := []models.CartItem{
			{ID: "a", Quantity: 2, Price: 60},
			{ID: "b", Quantity: 1, Medicine: &models.Medicine{Price: 99.5}},
		}

		// Act
		summary := checkout.Summarize(items)

		// Assert
		assert.Equal(t, 219.5, summary.Subtotal)
		assert.Equal(t, 45.0, summary.Shipping)
		assert.Equal(t, 264.5, summary.Total)
	})

	t.Run("embedded medicine price wins over denormalized price", func(t *testing.T) {
		items := []models.CartItem{
			{ID: "a", Quantity: 3, Price: 10, Medicine: &models.Medicine{Price: 12}},
		}

		assert.Equal(t, 36.0, checkout.Subtotal(items))
	})

	t.Run("free shipping above threshold", func(t *testing.T) {
		items := []models.CartItem{{ID: "a", Quantity: 1, Price: 501}}

		summary := checkout.Summarize(items)

		assert.Equal(t, 0.0, summary.Shipping)
		assert.Equal(t, 501.0, summary.Total)
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		summary := checkout.Summarize(nil)

		assert.Equal(t, 0.0, summary.Subtotal)
		assert.Equal(t, 0.0, summary.Shipping)
		assert.Equal(t, 0.0, summary.Total)
	})
}

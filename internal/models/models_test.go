package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Role
	}{
		{name: "Uppercase Admin", input: "ADMIN", expected: RoleAdmin},
		{name: "Lowercase Seller", input: "seller", expected: RoleSeller},
		{name: "Padded Mixed Case", input: "  Admin ", expected: RoleAdmin},
		{name: "Unknown Falls Back To Customer", input: "superuser", expected: RoleCustomer},
		{name: "Empty Falls Back To Customer", input: "", expected: RoleCustomer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseRole(tc.input))
		})
	}
}

func TestValidTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{name: "Pending To Processing", from: OrderPending, to: OrderProcessing, allowed: true},
		{name: "Pending To Cancelled", from: OrderPending, to: OrderCancelled, allowed: true},
		{name: "Pending To Delivered Skips Steps", from: OrderPending, to: OrderDelivered, allowed: false},
		{name: "Processing To Shipped", from: OrderProcessing, to: OrderShipped, allowed: true},
		{name: "Shipped To Delivered", from: OrderShipped, to: OrderDelivered, allowed: true},
		{name: "Shipped To Cancelled", from: OrderShipped, to: OrderCancelled, allowed: false},
		{name: "Delivered Is Terminal", from: OrderDelivered, to: OrderPending, allowed: false},
		{name: "Cancelled Is Terminal", from: OrderCancelled, to: OrderProcessing, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, ValidTransition(tc.from, tc.to))
		})
	}
}

func TestCartItemPricing(t *testing.T) {
	t.Run("Embedded Medicine Price Wins", func(t *testing.T) {
		item := CartItem{
			Quantity: 3,
			Price:    10,
			Medicine: &Medicine{Price: 12.5},
		}

		assert.Equal(t, 12.5, item.UnitPrice())
		assert.Equal(t, 37.5, item.LineTotal())
	})

	t.Run("Falls Back To Denormalized Price", func(t *testing.T) {
		item := CartItem{Quantity: 2, Price: 8}

		assert.Equal(t, 8.0, item.UnitPrice())
		assert.Equal(t, 16.0, item.LineTotal())
	})

	t.Run("Zero Embedded Price Is Ignored", func(t *testing.T) {
		item := CartItem{Quantity: 1, Price: 5, Medicine: &Medicine{}}

		assert.Equal(t, 5.0, item.UnitPrice())
	})
}

func TestPaymentMethods(t *testing.T) {
	methods := PaymentMethods()

	assert.Equal(t, []PaymentMethod{PaymentCOD, PaymentMobileBanking, PaymentOnline}, methods)
}

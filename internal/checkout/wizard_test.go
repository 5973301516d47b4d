package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/medicart/medicart-client/internal/checkout"
	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardShippingGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("empty address blocks with zero order calls", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		serveCart(h, models.CartItem{ID: "a", MedicineID: "m1", Quantity: 1, Price: 100})

		orderCalls := 0
		h.mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
			orderCalls++
			writeData(w, models.Order{ID: "o1"})
		})
		require.NoError(t, h.cart.Load(ctx))

		wizard := checkout.NewWizard(h.catalog, h.cart)

		// Act
		err := wizard.SubmitShipping(models.ShippingDetails{
			FullName: "Ayesha",
			City:     "Dhaka",
			Phone:    "01700000000",
		})

		// Assert
		require.Error(t, err)
		appErr, ok := errors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, checkout.StepShipping, wizard.Step())

		// Submission from the shipping step is also blocked.
		_, _, err = wizard.PlaceOrder(ctx)
		assert.Error(t, err)
		assert.Zero(t, orderCalls)
	})

	t.Run("unknown payment method is rejected", func(t *testing.T) {
		h := newHarness(t)
		serveCart(h, models.CartItem{ID: "a", MedicineID: "m1", Quantity: 1, Price: 100})
		require.NoError(t, h.cart.Load(ctx))

		wizard := checkout.NewWizard(h.catalog, h.cart)
		require.NoError(t, wizard.SubmitShipping(models.ShippingDetails{
			FullName: "Ayesha", Address: "12 Lake Rd", City: "Dhaka", Phone: "01700000000",
		}))

		assert.Error(t, wizard.SelectPayment("Cheque"))
		assert.NoError(t, wizard.SelectPayment(models.PaymentMobileBanking))
	})
}

func TestWizardPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("submits the cart snapshot and returns the confirmation route", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		serveCart(h,
			models.CartItem{ID: "a", MedicineID: "m1", Quantity: 2, Price: 120},
			models.CartItem{ID: "b", MedicineID: "m2", Quantity: 1, Price: 80},
		)

		var received models.CreateOrderRequest
		h.mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			writeData(w, models.Order{
				ID:          "o1",
				Items:       received.Items,
				TotalAmount: 365,
				Status:      models.OrderPending,
				CreatedAt:   time.Now(),
			})
		})
		require.NoError(t, h.cart.Load(ctx))

		wizard := checkout.NewWizard(h.catalog, h.cart)
		require.NoError(t, wizard.SubmitShipping(models.ShippingDetails{
			FullName: "Ayesha", Address: "12 Lake Rd", City: "Dhaka", Phone: "01700000000",
		}))
		require.NoError(t, wizard.SelectPayment(models.PaymentCOD))

		// Act
		order, route, err := wizard.PlaceOrder(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/orders/o1", route)
		assert.Equal(t, models.OrderPending, order.Status)
		assert.Len(t, received.Items, 2)
		assert.Equal(t, "12 Lake Rd, Dhaka", received.ShippingAddress)
		assert.Equal(t, models.PaymentCOD, received.PaymentMethod)

		// The local cart is not cleared; the server owns that.
		assert.Len(t, h.cart.Items(), 2)
	})

	t.Run("failed submission surfaces the server message and stays on payment", func(t *testing.T) {
		h := newHarness(t)
		serveCart(h, models.CartItem{ID: "a", MedicineID: "m1", Quantity: 1, Price: 100})
		h.mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusBadRequest, "Insufficient stock for Napa")
		})
		require.NoError(t, h.cart.Load(ctx))

		wizard := checkout.NewWizard(h.catalog, h.cart)
		require.NoError(t, wizard.SubmitShipping(models.ShippingDetails{
			FullName: "Ayesha", Address: "12 Lake Rd", City: "Dhaka", Phone: "01700000000",
		}))
		require.NoError(t, wizard.SelectPayment(models.PaymentOnline))

		_, _, err := wizard.PlaceOrder(ctx)

		assert.EqualError(t, err, "Insufficient stock for Napa")
		assert.Equal(t, checkout.StepPayment, wizard.Step())
	})

	t.Run("empty cart cannot be submitted", func(t *testing.T) {
		h := newHarness(t)
		serveCart(h)
		require.NoError(t, h.cart.Load(ctx))

		wizard := checkout.NewWizard(h.catalog, h.cart)
		require.NoError(t, wizard.SubmitShipping(models.ShippingDetails{
			FullName: "Ayesha", Address: "12 Lake Rd", City: "Dhaka", Phone: "01700000000",
		}))
		require.NoError(t, wizard.SelectPayment(models.PaymentCOD))

		_, _, err := wizard.PlaceOrder(ctx)

		assert.Error(t, err)
	})
}

package checkout

import (
	"context"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/medicart/medicart-client/internal/actions"
	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
)

type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
)

// Wizard is the two-step checkout flow: shipping details first, then payment
// method and submission. A failed submission leaves the wizard on the
// payment step so the customer can retry.
type Wizard struct {
	ID      string
	catalog *actions.Catalog
	cart    *Cart

	validate *validator.Validate
	step     Step
	shipping models.ShippingDetails
	payment  models.PaymentMethod
}

func NewWizard(catalog *actions.Catalog, cart *Cart) *Wizard {
	return &Wizard{
		ID:       uuid.NewString(),
		catalog:  catalog,
		cart:     cart,
		validate: validator.New(),
		step:     StepShipping,
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Summary() Summary {
	return w.cart.Summary()
}

// SubmitShipping validates presence of every field and advances to payment.
// Validation failures cost no network round-trip.
func (w *Wizard) SubmitShipping(details models.ShippingDetails) error {

	if w.step != StepShipping {
		return errors.ValidationError("Shipping details were already submitted")
	}

	if err := w.validate.Struct(details); err != nil {

		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return errors.ValidationError("Please fill in your " + errs[0].Field())
		}

		return errors.ValidationError("Please fill in all shipping fields")
	}

	w.shipping = details
	w.step = StepPayment

	return nil
}

// SelectPayment accepts only the fixed payment-method set.
func (w *Wizard) SelectPayment(method models.PaymentMethod) error {

	if w.step != StepPayment {
		return errors.ValidationError("Complete the shipping step first")
	}

	if !slices.Contains(models.PaymentMethods(), method) {
		return errors.ValidationError("Unknown payment method")
	}

	w.payment = method

	return nil
}

// PlaceOrder snapshots the cart and submits. The local cart is not cleared
// on success; the server clears it and the next load reflects that. On
// failure the wizard stays on the payment step.
func (w *Wizard) PlaceOrder(ctx context.Context) (*models.Order, string, error) {

	if w.step != StepPayment {
		return nil, "", errors.ValidationError("Complete the shipping step first")
	}

	if w.payment == "" {
		return nil, "", errors.ValidationError("Select a payment method")
	}

	items := w.cart.Items()
	if len(items) == 0 {
		return nil, "", errors.ValidationError("Your cart is empty")
	}

	orderItems := make([]models.OrderItem, 0, len(items))

	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			Price:      item.UnitPrice(),
		})
	}

	req := &models.CreateOrderRequest{
		Items:           orderItems,
		ShippingAddress: w.shipping.Address + ", " + w.shipping.City,
		PhoneNumber:     w.shipping.Phone,
		PaymentMethod:   w.payment,
	}

	order, err := w.catalog.CreateOrder(ctx, req)
	if err != nil {
		return nil, "", err
	}

	return order, "/orders/" + order.ID, nil
}

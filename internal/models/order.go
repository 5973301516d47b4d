package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidTransition is a client-side hint for seller tooling; the server
// remains authoritative and may reject a transition the client allowed.
func ValidTransition(from, to OrderStatus) bool {
	switch from {
	case OrderPending:
		return to == OrderProcessing || to == OrderCancelled
	case OrderProcessing:
		return to == OrderShipped || to == OrderCancelled
	case OrderShipped:
		return to == OrderDelivered
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCOD           PaymentMethod = "Cash on Delivery"
	PaymentMobileBanking PaymentMethod = "bKash / Nagad"
	PaymentOnline        PaymentMethod = "Online Payment"
)

// PaymentMethods is the fixed set offered at checkout step two.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCOD, PaymentMobileBanking, PaymentOnline}
}

type OrderItem struct {
	MedicineID string  `json:"medicineId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId,omitempty"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	ShippingAddress string        `json:"shippingAddress"`
	PhoneNumber     string        `json:"phoneNumber"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          OrderStatus   `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type CreateOrderRequest struct {
	Items           []OrderItem   `json:"items" validate:"required,min=1"`
	ShippingAddress string        `json:"shippingAddress" validate:"required"`
	PhoneNumber     string        `json:"phoneNumber" validate:"required"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" validate:"required"`
}

// ShippingDetails is the checkout step-one form; every field is required
// but otherwise unvalidated.
type ShippingDetails struct {
	FullName string `json:"fullName" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

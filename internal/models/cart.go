package models

// CartItem is one line of the server-held cart. Price is denormalized from
// the medicine at add time; when the API embeds the full medicine the
// embedded price wins.
type CartItem struct {
	ID         string    `json:"id"`
	MedicineID string    `json:"medicineId"`
	Medicine   *Medicine `json:"medicine,omitempty"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price,omitempty"`
}

// UnitPrice resolves the display price for the item.
func (i CartItem) UnitPrice() float64 {
	if i.Medicine != nil && i.Medicine.Price > 0 {
		return i.Medicine.Price
	}

	return i.Price
}

func (i CartItem) LineTotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}

type AddToCartRequest struct {
	MedicineID string `json:"medicineId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

package models

type Medicine struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CategoryID   string    `json:"categoryId,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Manufacturer string    `json:"manufacturer"`
	SellerID     string    `json:"sellerId,omitempty"`
	Image        string    `json:"image,omitempty"`
}

type CreateMedicineRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	CategoryID   string  `json:"categoryId" validate:"required"`
	Manufacturer string  `json:"manufacturer" validate:"required"`
	Image        string  `json:"image,omitempty"`
}

// UpdateMedicineRequest uses pointers so omitted fields are not sent at all;
// the API treats absent fields as "keep current value".
type UpdateMedicineRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock        *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	CategoryID   *string  `json:"categoryId,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Image        *string  `json:"image,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

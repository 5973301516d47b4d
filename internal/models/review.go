package models

import "time"

type Review struct {
	ID         string    `json:"id"`
	MedicineID string    `json:"medicineId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateReviewRequest struct {
	MedicineID string `json:"medicineId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

type AdminStats struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalSellers int     `json:"totalSellers"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type SellerStats struct {
	TotalMedicines int     `json:"totalMedicines"`
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	Revenue        float64 `json:"revenue"`
}

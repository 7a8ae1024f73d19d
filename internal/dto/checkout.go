package dto

import (
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// CartDTO represents the cart with its totals
type CartDTO struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	SubTotal  float64           `json:"sub_total"`
	Tax       float64           `json:"tax"`
	Total     float64           `json:"total"`
}

// ToCartDTO converts cart lines and their summary to CartDTO
func ToCartDTO(items []models.CartItem, summary services.CartSummary) CartDTO {
	if items == nil {
		items = []models.CartItem{}
	}
	return CartDTO{
		Items:     items,
		ItemCount: summary.ItemCount,
		SubTotal:  summary.SubTotal,
		Tax:       summary.Tax,
		Total:     summary.Total,
	}
}

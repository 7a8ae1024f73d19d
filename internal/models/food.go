package models

type Food struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	OldPrice *float64 `json:"old_price,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Img      string   `json:"img,omitempty"`
	Category string   `json:"category"`
}

// CartItem is a Food line in the cart. Quantity is at least 1.
type CartItem struct {
	Food
	Quantity int `json:"quantity"`
}

// PlacedOrder is a checkout snapshot. Monetary fields are computed once at
// creation and never recomputed.
type PlacedOrder struct {
	ID        string     `json:"id"`
	CreatedAt string     `json:"created_at"`
	Items     []CartItem `json:"items"`
	SubTotal  float64    `json:"sub_total"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
}

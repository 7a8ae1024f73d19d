package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDispatch  OrderStatus = "Dispatch"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDispatch, OrderStatusCompleted:
		return true
	}
	return false
}

// TableOrder is a row of the order table.
type TableOrder struct {
	ID      int64       `json:"id"`
	Code    string      `json:"code"`
	Name    string      `json:"name"`
	Avatar  string      `json:"avatar"`
	Address string      `json:"address"`
	Date    string      `json:"date"` // yyyy-MM-dd
	Price   float64     `json:"price"`
	Status  OrderStatus `json:"status"`
}

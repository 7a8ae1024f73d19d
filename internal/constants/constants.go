package constants

// Storage slot keys. Each store owns exactly one key.
const (
	SlotTableOrders = "orders-data"
	SlotKanbanTasks = "kanban-tasks-v1"
	SlotFoods       = "burger_foods"
	SlotCart        = "burger_cart"
	SlotWishlist    = "burger_wishlist"
	SlotOrders      = "burger_orders"
	SlotSettings    = "generalInformation"
)

// Session
const (
	SessionCookieName   = "dashboard_session"
	SessionKeyOrderView = "order_view"
	ContextKeyRequestID = "rid"
	ContextKeyOrderView = "order_view"
	ContextKeyRecordID  = "record_id"
)

// Order table view
const (
	OrderTablePageSize = 6
	MinPageSize        = 1
)

// Checkout
const (
	// TaxRatePercent is applied to the cart subtotal and rounded to cents.
	TaxRatePercent = 7
	OrderIDPrefix  = "ORD-"
)

// Kanban
const (
	ProgressDotCount    = 12
	MaxAIGeneratedTasks = 20
)

// Settings
const (
	MaxPhoneLength      = 20
	PostcodeLengthTH    = 5
	PostcodeLengthOther = 10
	CountryCodeThailand = "TH"
)

package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/utils"
)

var (
	ErrInvalidSortKey      = errors.New("invalid sort key")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
)

// StatusFilterAll disables the status filter
const StatusFilterAll = "All"

type SortKey string

const (
	SortByCode    SortKey = "code"
	SortByName    SortKey = "name"
	SortByAddress SortKey = "address"
	SortByDate    SortKey = "date"
	SortByPrice   SortKey = "price"
	SortByStatus  SortKey = "status"
)

// Valid reports whether k is a sortable column
func (k SortKey) Valid() bool {
	switch k {
	case SortByCode, SortByName, SortByAddress, SortByDate, SortByPrice, SortByStatus:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// OrderFilter selects rows of the order table. Nil bounds are open.
type OrderFilter struct {
	Query  string
	Status string
	From   *time.Time
	To     *time.Time
}

// FilterOrders keeps orders matching every criterion of f, in input order.
func FilterOrders(orders []models.TableOrder, f OrderFilter) []models.TableOrder {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.TableOrder, 0, len(orders))

	for _, o := range orders {
		if f.Status != "" && f.Status != StatusFilterAll && string(o.Status) != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Name), q) &&
			!strings.Contains(strings.ToLower(o.Code), q) &&
			!strings.Contains(strings.ToLower(o.Address), q) {
			continue
		}
		if f.From != nil || f.To != nil {
			d, ok := parseOrderDate(o.Date)
			if !ok {
				continue
			}
			if f.From != nil && d.Before(*f.From) {
				continue
			}
			if f.To != nil && d.After(*f.To) {
				continue
			}
		}
		out = append(out, o)
	}

	return out
}

// SortOrders returns a stably sorted copy of orders.
func SortOrders(orders []models.TableOrder, key SortKey, dir SortDirection) []models.TableOrder {
	out := make([]models.TableOrder, len(orders))
	copy(out, orders)

	sign := 1
	if dir == SortDesc {
		sign = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sign*compareOrders(out[i], out[j], key) < 0
	})

	return out
}

func compareOrders(a, b models.TableOrder, key SortKey) int {
	switch key {
	case SortByPrice:
		return compareFloat(a.Price, b.Price)
	case SortByDate:
		da, _ := parseOrderDate(a.Date)
		db, _ := parseOrderDate(b.Date)
		return da.Compare(db)
	case SortByName:
		return compareFold(a.Name, b.Name)
	case SortByAddress:
		return compareFold(a.Address, b.Address)
	case SortByStatus:
		return compareFold(string(a.Status), string(b.Status))
	default:
		return compareFold(a.Code, b.Code)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// parseOrderDate accepts YYYY-MM-DD and RFC3339
func parseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// OrderPage is one page of the derived order view
type OrderPage struct {
	Items      []models.TableOrder
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	StartIndex int
	EndIndex   int
}

// PaginateOrders cuts orders into fixed-size pages and returns the clamped page.
func PaginateOrders(orders []models.TableOrder, page, pageSize int) OrderPage {
	params := utils.GetPaginationParams(page, pageSize, len(orders))
	start, end := params.Window(len(orders))

	items := make([]models.TableOrder, end-start)
	copy(items, orders[start:end])

	result := OrderPage{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalCount: len(orders),
		TotalPages: params.TotalPages,
		EndIndex:   end,
	}
	if end > start {
		result.StartIndex = start + 1
	}
	return result
}

// OrderViewState is the per-client state of the order table: filters,
// sort, and the current page.
type OrderViewState struct {
	Query    string        `json:"q"`
	Status   string        `json:"status"`
	DateFrom string        `json:"date_from"`
	DateTo   string        `json:"date_to"`
	SortKey  SortKey       `json:"sort_key"`
	SortDir  SortDirection `json:"sort_dir"`
	Page     int           `json:"page"`
}

// DefaultOrderViewState shows every order sorted by code ascending
func DefaultOrderViewState() OrderViewState {
	return OrderViewState{
		Status:  StatusFilterAll,
		SortKey: SortByCode,
		SortDir: SortAsc,
		Page:    1,
	}
}

// OrderViewUpdate carries the fields a client wants to change. Nil fields are kept.
type OrderViewUpdate struct {
	Query    *string
	Status   *string
	DateFrom *string
	DateTo   *string
	Page     *int
}

// Apply validates and applies u. Any change to a filter field resets the
// page to 1 and wins over a page requested in the same update.
func (v *OrderViewState) Apply(u OrderViewUpdate) error {
	if u.Status != nil && *u.Status != StatusFilterAll && !models.OrderStatus(*u.Status).Valid() {
		return ErrInvalidStatusFilter
	}
	for _, d := range []*string{u.DateFrom, u.DateTo} {
		if d != nil && *d != "" {
			if _, ok := parseOrderDate(*d); !ok {
				return ErrInvalidDate
			}
		}
	}

	changed := false
	set := func(dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}
	set(&v.Query, u.Query)
	set(&v.Status, u.Status)
	set(&v.DateFrom, u.DateFrom)
	set(&v.DateTo, u.DateTo)

	switch {
	case changed:
		v.Page = 1
	case u.Page != nil:
		v.Page = *u.Page
	}
	return nil
}

// SetSort sorts by key; selecting the current key again flips the
// direction, a new key starts ascending. The page is kept.
func (v *OrderViewState) SetSort(key SortKey) error {
	if !key.Valid() {
		return ErrInvalidSortKey
	}
	if v.SortKey == key {
		if v.SortDir == SortAsc {
			v.SortDir = SortDesc
		} else {
			v.SortDir = SortAsc
		}
		return nil
	}
	v.SortKey = key
	v.SortDir = SortAsc
	return nil
}

// Clear drops every filter
func (v *OrderViewState) Clear() {
	empty, all := "", StatusFilterAll
	_ = v.Apply(OrderViewUpdate{Query: &empty, Status: &all, DateFrom: &empty, DateTo: &empty})
}

// Filter converts the state into an OrderFilter. Unparseable bounds are treated as open.
func (v OrderViewState) Filter() OrderFilter {
	f := OrderFilter{Query: v.Query, Status: v.Status}
	if t, ok := parseOrderDate(v.DateFrom); ok {
		f.From = &t
	}
	if t, ok := parseOrderDate(v.DateTo); ok {
		f.To = &t
	}
	return f
}

// Render runs filter, sort and paginate over orders and stores the clamped page back.
func (v *OrderViewState) Render(orders []models.TableOrder) OrderPage {
	if !v.SortKey.Valid() {
		v.SortKey = SortByCode
	}
	if v.SortDir != SortDesc {
		v.SortDir = SortAsc
	}

	filtered := FilterOrders(orders, v.Filter())
	sorted := SortOrders(filtered, v.SortKey, v.SortDir)
	page := PaginateOrders(sorted, v.Page, constants.OrderTablePageSize)
	v.Page = page.Page

	return page
}

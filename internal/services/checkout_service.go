package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
	"github.com/yukikurage/dashboard-demo-api/internal/utils"
)

var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

// placedAtLayout is the ISO timestamp stored on placed orders
const placedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// CartSummary holds the totals of the current cart
type CartSummary struct {
	ItemCount int     `json:"item_count"`
	SubTotal  float64 `json:"sub_total"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// WishlistState is the wishlist together with its multi-select state
type WishlistState struct {
	Items    []models.Food `json:"items"`
	EditMode bool          `json:"edit_mode"`
	Selected []int64       `json:"selected"`
}

// CheckoutService owns the cart, the wishlist and the placed order history.
// Each collection is persisted to its own slot.
type CheckoutService struct {
	cart     *repository.RecordStore[models.CartItem, int64]
	wishlist *repository.RecordStore[models.Food, int64]
	orders   *repository.RecordStore[models.PlacedOrder, string]

	checkoutMu sync.Mutex

	wishMu   sync.Mutex
	editMode bool
	selected map[int64]bool

	now        func() time.Time
	newOrderID func() (string, error)
}

// NewCheckoutService loads cart, wishlist and order history. Each starts empty on first use.
func NewCheckoutService(ctx context.Context, slots repository.SlotRepository) (*CheckoutService, error) {
	cart, err := repository.NewRecordStore(ctx, slots, constants.SlotCart,
		func(i models.CartItem) int64 { return i.ID }, func() []models.CartItem { return []models.CartItem{} })
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	wishlist, err := repository.NewRecordStore(ctx, slots, constants.SlotWishlist,
		func(f models.Food) int64 { return f.ID }, func() []models.Food { return []models.Food{} })
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	orders, err := repository.NewRecordStore(ctx, slots, constants.SlotOrders,
		func(o models.PlacedOrder) string { return o.ID }, func() []models.PlacedOrder { return []models.PlacedOrder{} })
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	return &CheckoutService{
		cart:       cart,
		wishlist:   wishlist,
		orders:     orders,
		selected:   make(map[int64]bool),
		now:        time.Now,
		newOrderID: utils.GenerateOrderID,
	}, nil
}

// Cart returns the cart lines in insertion order
func (s *CheckoutService) Cart() []models.CartItem {
	return s.cart.List()
}

// AddToCart increments the line for food, or appends a new line with quantity 1
func (s *CheckoutService) AddToCart(ctx context.Context, food models.Food) (*models.CartItem, error) {
	var line models.CartItem
	err := s.cart.Mutate(ctx, func(items []models.CartItem) ([]models.CartItem, error) {
		for i := range items {
			if items[i].ID == food.ID {
				items[i].Quantity++
				line = items[i]
				return items, nil
			}
		}
		line = models.CartItem{Food: food, Quantity: 1}
		return append(items, line), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	return &line, nil
}

// IncreaseQty adds one to a cart line
func (s *CheckoutService) IncreaseQty(ctx context.Context, id int64) error {
	return s.updateQty(ctx, id, 1)
}

// DecreaseQty removes one from a cart line without going below 1
func (s *CheckoutService) DecreaseQty(ctx context.Context, id int64) error {
	return s.updateQty(ctx, id, -1)
}

func (s *CheckoutService) updateQty(ctx context.Context, id int64, delta int) error {
	err := s.cart.Mutate(ctx, func(items []models.CartItem) ([]models.CartItem, error) {
		found := false
		for i := range items {
			if items[i].ID == id {
				found = true
				items[i].Quantity += delta
				if items[i].Quantity < 1 {
					items[i].Quantity = 1
				}
			}
		}
		if !found {
			return nil, ErrCartItemNotFound
		}
		kept := items[:0]
		for _, item := range items {
			if item.Quantity > 0 {
				kept = append(kept, item)
			}
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, ErrCartItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}

// RemoveFromCart drops a cart line
func (s *CheckoutService) RemoveFromCart(ctx context.Context, id int64) error {
	found, err := s.cart.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	if !found {
		return ErrCartItemNotFound
	}
	return nil
}

// Summary computes subtotal, tax and total of the current cart
func (s *CheckoutService) Summary() CartSummary {
	return summarize(s.cart.List())
}

// PlaceOrder freezes the cart into an order at the head of the history and
// empties the cart. An empty cart returns ErrCartEmpty and changes nothing.
// The cart stays locked from reading its lines until it is cleared, so a
// concurrent cart command lands either in the order or in the next cart.
func (s *CheckoutService) PlaceOrder(ctx context.Context) (*models.PlacedOrder, error) {
	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()

	id, err := s.newOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	var order models.PlacedOrder
	saved := false
	err = s.cart.Mutate(ctx, func(items []models.CartItem) ([]models.CartItem, error) {
		if len(items) == 0 {
			return nil, ErrCartEmpty
		}

		lines := append([]models.CartItem(nil), items...)
		sum := summarize(lines)
		order = models.PlacedOrder{
			ID:        id,
			CreatedAt: s.now().UTC().Format(placedAtLayout),
			Items:     lines,
			SubTotal:  sum.SubTotal,
			Tax:       sum.Tax,
			Total:     sum.Total,
		}

		err := s.orders.Mutate(ctx, func(history []models.PlacedOrder) ([]models.PlacedOrder, error) {
			return append([]models.PlacedOrder{order}, history...), nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save order: %w", err)
		}
		saved = true
		return []models.CartItem{}, nil
	})
	if err != nil {
		if saved {
			if _, rbErr := s.orders.Delete(ctx, order.ID); rbErr != nil {
				log.Printf("[checkout] failed to roll back order %s: %v", order.ID, rbErr)
			}
			return nil, fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil, err
	}

	return &order, nil
}

// ListOrders returns the order history, newest first
func (s *CheckoutService) ListOrders() []models.PlacedOrder {
	return s.orders.List()
}

// RemoveOrder deletes an order from the history
func (s *CheckoutService) RemoveOrder(ctx context.Context, id string) error {
	found, err := s.orders.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove order: %w", err)
	}
	if !found {
		return ErrOrderNotFound
	}
	return nil
}

// Wishlist returns the wishlist and its selection
func (s *CheckoutService) Wishlist() WishlistState {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()
	return s.wishlistState()
}

// ToggleWishlist adds food to the wishlist, or removes it when already present.
// It reports whether food is in the wishlist afterwards.
func (s *CheckoutService) ToggleWishlist(ctx context.Context, food models.Food) (bool, error) {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	added := false
	err := s.wishlist.Mutate(ctx, func(items []models.Food) ([]models.Food, error) {
		for i := range items {
			if items[i].ID == food.ID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		added = true
		return append(items, food), nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to update wishlist: %w", err)
	}
	if !added {
		delete(s.selected, food.ID)
	}
	return added, nil
}

// ClearWishlist empties the wishlist and its selection
func (s *CheckoutService) ClearWishlist(ctx context.Context) error {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	if err := s.wishlist.Replace(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	s.selected = make(map[int64]bool)
	return nil
}

// ToggleEditMode enters or leaves multi-select. Leaving clears the selection.
func (s *CheckoutService) ToggleEditMode() WishlistState {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	s.editMode = !s.editMode
	if !s.editMode {
		s.selected = make(map[int64]bool)
	}
	return s.wishlistState()
}

// ToggleSelect flips the selection of one wishlist item
func (s *CheckoutService) ToggleSelect(id int64) (WishlistState, error) {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	if _, ok := s.wishlist.GetByID(id); !ok {
		return WishlistState{}, ErrWishlistItemNotFound
	}
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	return s.wishlistState(), nil
}

// SelectAll selects every wishlist item
func (s *CheckoutService) SelectAll() WishlistState {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	for _, f := range s.wishlist.List() {
		s.selected[f.ID] = true
	}
	return s.wishlistState()
}

// ClearSelection deselects everything
func (s *CheckoutService) ClearSelection() WishlistState {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	s.selected = make(map[int64]bool)
	return s.wishlistState()
}

// RemoveSelected deletes the selected items, then clears the selection and
// leaves edit mode. Nothing happens when the selection is empty.
func (s *CheckoutService) RemoveSelected(ctx context.Context) (WishlistState, error) {
	s.wishMu.Lock()
	defer s.wishMu.Unlock()

	if len(s.selected) == 0 {
		return s.wishlistState(), nil
	}

	err := s.wishlist.Mutate(ctx, func(items []models.Food) ([]models.Food, error) {
		kept := items[:0]
		for _, f := range items {
			if !s.selected[f.ID] {
				kept = append(kept, f)
			}
		}
		return kept, nil
	})
	if err != nil {
		return WishlistState{}, fmt.Errorf("failed to remove wishlist items: %w", err)
	}

	s.selected = make(map[int64]bool)
	s.editMode = false
	return s.wishlistState(), nil
}

// wishlistState builds the response. Caller holds wishMu.
func (s *CheckoutService) wishlistState() WishlistState {
	items := s.wishlist.List()
	selected := []int64{}
	for _, f := range items {
		if s.selected[f.ID] {
			selected = append(selected, f.ID)
		}
	}
	return WishlistState{Items: items, EditMode: s.editMode, Selected: selected}
}

// summarize adds up a cart in decimal arithmetic. Tax is rounded to cents.
func summarize(items []models.CartItem) CartSummary {
	subTotal := decimal.Zero
	count := 0
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subTotal = subTotal.Add(line)
		count += item.Quantity
	}
	tax := subTotal.Mul(decimal.NewFromInt(constants.TaxRatePercent)).Div(decimal.NewFromInt(100)).Round(2)
	total := subTotal.Add(tax)

	return CartSummary{
		ItemCount: count,
		SubTotal:  subTotal.InexactFloat64(),
		Tax:       tax.InexactFloat64(),
		Total:     total.InexactFloat64(),
	}
}

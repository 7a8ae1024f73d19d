package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
)

var (
	tenBurger = models.Food{ID: 1, Name: "Burger", Price: 10, Category: "Burger"}
	fiveDonut = models.Food{ID: 2, Name: "Donut", Price: 5, Category: "Donuts"}
)

func newTestCheckoutService(t *testing.T) (*CheckoutService, *switchableSlots) {
	t.Helper()
	slots := newSwitchableSlots()
	svc, err := NewCheckoutService(context.Background(), slots)
	require.NoError(t, err)
	svc.now = fixedClock(time.Date(2025, 5, 1, 12, 30, 0, 0, time.UTC))
	svc.newOrderID = func() (string, error) { return "ORD-TEST01", nil }
	return svc, slots
}

func TestCheckoutService_StartsEmpty(t *testing.T) {
	svc, _ := newTestCheckoutService(t)

	assert.Empty(t, svc.Cart())
	assert.Empty(t, svc.ListOrders())
	assert.Empty(t, svc.Wishlist().Items)
	assert.Equal(t, CartSummary{}, svc.Summary())
}

func TestCheckoutService_AddToCart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)

	line, err := svc.AddToCart(ctx, tenBurger)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = svc.AddToCart(ctx, tenBurger)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	_, err = svc.AddToCart(ctx, fiveDonut)
	require.NoError(t, err)

	cart := svc.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, int64(1), cart[0].ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, int64(2), cart[1].ID)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestCheckoutService_QuantityChanges(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, err := svc.AddToCart(ctx, tenBurger)
	require.NoError(t, err)

	require.NoError(t, svc.IncreaseQty(ctx, 1))
	require.NoError(t, svc.IncreaseQty(ctx, 1))
	assert.Equal(t, 3, svc.Cart()[0].Quantity)

	require.NoError(t, svc.DecreaseQty(ctx, 1))
	require.NoError(t, svc.DecreaseQty(ctx, 1))
	require.NoError(t, svc.DecreaseQty(ctx, 1))
	require.Len(t, svc.Cart(), 1)
	assert.Equal(t, 1, svc.Cart()[0].Quantity)

	assert.ErrorIs(t, svc.IncreaseQty(ctx, 99), ErrCartItemNotFound)
	assert.ErrorIs(t, svc.DecreaseQty(ctx, 99), ErrCartItemNotFound)

	require.NoError(t, svc.RemoveFromCart(ctx, 1))
	assert.Empty(t, svc.Cart())
	assert.ErrorIs(t, svc.RemoveFromCart(ctx, 1), ErrCartItemNotFound)
}

func TestCheckoutService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, tenBurger)
	_, _ = svc.AddToCart(ctx, tenBurger)
	_, _ = svc.AddToCart(ctx, fiveDonut)

	sum := svc.Summary()

	assert.Equal(t, 3, sum.ItemCount)
	assert.Equal(t, 25.0, sum.SubTotal)
	assert.Equal(t, 1.75, sum.Tax)
	assert.Equal(t, 26.75, sum.Total)
}

func TestCheckoutService_TaxRoundsToCents(t *testing.T) {
	sum := summarize([]models.CartItem{{Food: models.Food{ID: 1, Price: 0.1}, Quantity: 3}})

	assert.Equal(t, 0.3, sum.SubTotal)
	assert.Equal(t, 0.02, sum.Tax)
	assert.Equal(t, 0.32, sum.Total)
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	svc, slots := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, tenBurger)
	_, _ = svc.AddToCart(ctx, tenBurger)
	_, _ = svc.AddToCart(ctx, fiveDonut)

	order, err := svc.PlaceOrder(ctx)
	require.NoError(t, err)

	assert.Equal(t, "ORD-TEST01", order.ID)
	assert.Equal(t, "2025-05-01T12:30:00.000Z", order.CreatedAt)
	assert.Equal(t, 25.0, order.SubTotal)
	assert.Equal(t, 1.75, order.Tax)
	assert.Equal(t, 26.75, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Empty(t, svc.Cart())

	svc.newOrderID = func() (string, error) { return "ORD-TEST02", nil }
	_, _ = svc.AddToCart(ctx, fiveDonut)
	_, err = svc.PlaceOrder(ctx)
	require.NoError(t, err)

	orders := svc.ListOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-TEST02", orders[0].ID)
	assert.Equal(t, "ORD-TEST01", orders[1].ID)
	assert.Equal(t, 26.75, orders[1].Total)

	reopened, err := NewCheckoutService(ctx, slots)
	require.NoError(t, err)
	assert.Len(t, reopened.ListOrders(), 2)
	assert.Empty(t, reopened.Cart())
}

func TestCheckoutService_PlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, fiveDonut)
	_, err := svc.PlaceOrder(ctx)
	require.NoError(t, err)
	before := svc.ListOrders()

	_, err = svc.PlaceOrder(ctx)

	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Equal(t, before, svc.ListOrders())
	assert.Empty(t, svc.Cart())
}

func TestCheckoutService_PlaceOrderWriteFailure(t *testing.T) {
	ctx := context.Background()
	svc, slots := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, tenBurger)
	slots.failSet = true

	_, err := svc.PlaceOrder(ctx)

	assert.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, svc.ListOrders())
	assert.Len(t, svc.Cart(), 1)
}

func TestCheckoutService_PlaceOrderCartClearFailure(t *testing.T) {
	ctx := context.Background()
	svc, slots := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, tenBurger)
	slots.failKeys = map[string]bool{constants.SlotCart: true}

	_, err := svc.PlaceOrder(ctx)

	assert.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, svc.ListOrders())
	assert.Len(t, svc.Cart(), 1)
}

func TestCheckoutService_PlaceOrderKeepsLateAdds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, tenBurger)
	svc.newOrderID = func() (string, error) {
		_, err := svc.AddToCart(ctx, fiveDonut)
		return "ORD-TEST01", err
	}

	order, err := svc.PlaceOrder(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, cartFoodIDs(order.Items))
	assert.Empty(t, svc.Cart())
}

func TestCheckoutService_PlaceOrderConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	var seq atomic.Int64
	svc.newOrderID = func() (string, error) {
		return fmt.Sprintf("ORD-%06d", seq.Add(1)), nil
	}

	const adds = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < adds; i++ {
			_, err := svc.AddToCart(ctx, tenBurger)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < adds/4; i++ {
			_, err := svc.PlaceOrder(ctx)
			if err != nil {
				assert.ErrorIs(t, err, ErrCartEmpty)
			}
		}
	}()
	wg.Wait()

	total := 0
	for _, o := range svc.ListOrders() {
		for _, item := range o.Items {
			total += item.Quantity
		}
	}
	for _, item := range svc.Cart() {
		total += item.Quantity
	}
	assert.Equal(t, adds, total)
}

func cartFoodIDs(items []models.CartItem) []int64 {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestCheckoutService_RemoveOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.AddToCart(ctx, tenBurger)
	_, err := svc.PlaceOrder(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveOrder(ctx, "ORD-TEST01"))
	assert.Empty(t, svc.ListOrders())
	assert.ErrorIs(t, svc.RemoveOrder(ctx, "ORD-TEST01"), ErrOrderNotFound)
}

func TestCheckoutService_WishlistToggle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)

	added, err := svc.ToggleWishlist(ctx, tenBurger)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.ToggleWishlist(ctx, fiveDonut)
	require.NoError(t, err)
	assert.True(t, added)

	_, err = svc.ToggleSelect(1)
	require.NoError(t, err)

	added, err = svc.ToggleWishlist(ctx, tenBurger)
	require.NoError(t, err)
	assert.False(t, added)

	state := svc.Wishlist()
	assert.Equal(t, []int64{2}, foodIDs(state.Items))
	assert.Empty(t, state.Selected)

	require.NoError(t, svc.ClearWishlist(ctx))
	assert.Empty(t, svc.Wishlist().Items)
}

func TestCheckoutService_WishlistMultiSelect(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.ToggleWishlist(ctx, tenBurger)
	_, _ = svc.ToggleWishlist(ctx, fiveDonut)
	_, _ = svc.ToggleWishlist(ctx, models.Food{ID: 3, Name: "Hot dog", Price: 12})

	state := svc.ToggleEditMode()
	assert.True(t, state.EditMode)

	state = svc.SelectAll()
	assert.Equal(t, []int64{1, 2, 3}, state.Selected)

	state = svc.ClearSelection()
	assert.Empty(t, state.Selected)

	_, err := svc.ToggleSelect(1)
	require.NoError(t, err)
	state, err = svc.ToggleSelect(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, state.Selected)

	_, err = svc.ToggleSelect(42)
	assert.ErrorIs(t, err, ErrWishlistItemNotFound)

	state, err = svc.RemoveSelected(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, foodIDs(state.Items))
	assert.Empty(t, state.Selected)
	assert.False(t, state.EditMode)
}

func TestCheckoutService_LeavingEditModeClearsSelection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.ToggleWishlist(ctx, tenBurger)

	svc.ToggleEditMode()
	svc.SelectAll()
	state := svc.ToggleEditMode()

	assert.False(t, state.EditMode)
	assert.Empty(t, state.Selected)
}

func TestCheckoutService_RemoveSelectedWithEmptySelection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCheckoutService(t)
	_, _ = svc.ToggleWishlist(ctx, tenBurger)
	svc.ToggleEditMode()

	state, err := svc.RemoveSelected(ctx)
	require.NoError(t, err)

	assert.Len(t, state.Items, 1)
	assert.True(t, state.EditMode)
}

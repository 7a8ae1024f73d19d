package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/dashboard-demo-api/internal/dto"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
	"github.com/yukikurage/dashboard-demo-api/internal/middleware"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// CheckoutHandlerTestSuite defines the test suite for CheckoutHandler
type CheckoutHandlerTestSuite struct {
	suite.Suite
	checkout *services.CheckoutService
	router   *gin.Engine
}

// SetupTest runs before each test
func (suite *CheckoutHandlerTestSuite) SetupTest() {
	ctx := context.Background()
	slots := repository.NewMemorySlotRepository()

	foods, err := services.NewFoodService(ctx, slots)
	suite.Require().NoError(err)
	suite.checkout, err = services.NewCheckoutService(ctx, slots)
	suite.Require().NoError(err)
	h := NewCheckoutHandler(suite.checkout, foods)

	suite.router = newTestRouter()
	cart := suite.router.Group("/api/cart")
	cart.GET("", h.GetCart)
	cart.POST("/items", h.AddToCart)
	cart.POST("/items/:id/increase", middleware.RequireRecordID(), h.IncreaseQty)
	cart.POST("/items/:id/decrease", middleware.RequireRecordID(), h.DecreaseQty)
	cart.DELETE("/items/:id", middleware.RequireRecordID(), h.RemoveFromCart)

	wishlist := suite.router.Group("/api/wishlist")
	wishlist.GET("", h.GetWishlist)
	wishlist.POST("/toggle", h.ToggleWishlist)
	wishlist.DELETE("", h.ClearWishlist)
	wishlist.POST("/edit", h.ToggleEditMode)
	wishlist.POST("/selection/all", h.SelectAll)
	wishlist.POST("/selection/:id", middleware.RequireRecordID(), h.ToggleSelect)
	wishlist.DELETE("/selection", h.ClearSelection)
	wishlist.DELETE("/selected", h.RemoveSelected)

	orders := suite.router.Group("/api/orders")
	orders.GET("", h.ListOrders)
	orders.POST("", h.PlaceOrder)
	orders.DELETE("/:id", h.RemoveOrder)
}

func (suite *CheckoutHandlerTestSuite) addToCart(foodID int64) dto.CartDTO {
	w := performRequest(suite.router, http.MethodPost, "/api/cart/items", map[string]int64{"food_id": foodID})
	suite.Require().Equal(http.StatusOK, w.Code)

	var cart dto.CartDTO
	decodeJSON(suite.T(), w, &cart)
	return cart
}

// TestAddToCart_MergesLinesAndTotals tests cart lines and decimal totals
func (suite *CheckoutHandlerTestSuite) TestAddToCart_MergesLinesAndTotals() {
	suite.addToCart(1)
	suite.addToCart(1)
	cart := suite.addToCart(7)

	require.Len(suite.T(), cart.Items, 2)
	assert.Equal(suite.T(), 2, cart.Items[0].Quantity)
	assert.Equal(suite.T(), "Vegetable Burger", cart.Items[0].Name)
	assert.Equal(suite.T(), 3, cart.ItemCount)
	assert.Equal(suite.T(), 56.0, cart.SubTotal)
	assert.Equal(suite.T(), 3.92, cart.Tax)
	assert.Equal(suite.T(), 59.92, cart.Total)
}

// TestAddToCart_UnknownFood tests adding a food missing from the catalog
func (suite *CheckoutHandlerTestSuite) TestAddToCart_UnknownFood() {
	w := performRequest(suite.router, http.MethodPost, "/api/cart/items", map[string]int64{"food_id": 999})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = performRequest(suite.router, http.MethodPost, "/api/cart/items", map[string]string{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestQuantityControls tests increase, decrease and remove on a cart line
func (suite *CheckoutHandlerTestSuite) TestQuantityControls() {
	suite.addToCart(3)

	w := performRequest(suite.router, http.MethodPost, "/api/cart/items/3/increase", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var cart dto.CartDTO
	decodeJSON(suite.T(), w, &cart)
	assert.Equal(suite.T(), 2, cart.Items[0].Quantity)

	for i := 0; i < 3; i++ {
		w = performRequest(suite.router, http.MethodPost, "/api/cart/items/3/decrease", nil)
		suite.Require().Equal(http.StatusOK, w.Code)
	}
	decodeJSON(suite.T(), w, &cart)
	require.Len(suite.T(), cart.Items, 1)
	assert.Equal(suite.T(), 1, cart.Items[0].Quantity)

	w = performRequest(suite.router, http.MethodDelete, "/api/cart/items/3", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	decodeJSON(suite.T(), w, &cart)
	assert.Empty(suite.T(), cart.Items)
	assert.Equal(suite.T(), 0.0, cart.Total)

	w = performRequest(suite.router, http.MethodPost, "/api/cart/items/3/increase", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestPlaceOrder_Success tests checking out a cart
func (suite *CheckoutHandlerTestSuite) TestPlaceOrder_Success() {
	suite.addToCart(2)
	suite.addToCart(13)

	w := performRequest(suite.router, http.MethodPost, "/api/orders", nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var order models.PlacedOrder
	decodeJSON(suite.T(), w, &order)
	assert.True(suite.T(), strings.HasPrefix(order.ID, "ORD-"))
	assert.Len(suite.T(), order.Items, 2)
	assert.Equal(suite.T(), 40.0, order.SubTotal)
	assert.Equal(suite.T(), 2.8, order.Tax)
	assert.Equal(suite.T(), 42.8, order.Total)

	w = performRequest(suite.router, http.MethodGet, "/api/cart", nil)
	var cart dto.CartDTO
	decodeJSON(suite.T(), w, &cart)
	assert.Empty(suite.T(), cart.Items)

	w = performRequest(suite.router, http.MethodGet, "/api/orders", nil)
	var history struct {
		Orders []models.PlacedOrder `json:"orders"`
	}
	decodeJSON(suite.T(), w, &history)
	require.Len(suite.T(), history.Orders, 1)
	assert.Equal(suite.T(), order.ID, history.Orders[0].ID)

	w = performRequest(suite.router, http.MethodDelete, "/api/orders/"+order.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	w = performRequest(suite.router, http.MethodDelete, "/api/orders/"+order.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestPlaceOrder_EmptyCart tests checking out with nothing in the cart
func (suite *CheckoutHandlerTestSuite) TestPlaceOrder_EmptyCart() {
	w := performRequest(suite.router, http.MethodPost, "/api/orders", nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var apiErr apierrors.APIError
	decodeJSON(suite.T(), w, &apiErr)
	assert.Equal(suite.T(), apierrors.ErrCodeInvalidOperation, apiErr.Code)
	assert.Equal(suite.T(), "Your cart is empty", apiErr.Message)
	assert.Empty(suite.T(), suite.checkout.ListOrders())
}

// TestWishlist_ToggleAndRemoveSelected tests the wishlist multi-select flow
func (suite *CheckoutHandlerTestSuite) TestWishlist_ToggleAndRemoveSelected() {
	for _, id := range []int64{4, 8, 15} {
		w := performRequest(suite.router, http.MethodPost, "/api/wishlist/toggle", map[string]int64{"food_id": id})
		suite.Require().Equal(http.StatusOK, w.Code)
	}

	w := performRequest(suite.router, http.MethodPost, "/api/wishlist/toggle", map[string]int64{"food_id": 8})
	var toggled struct {
		InWishlist bool                   `json:"in_wishlist"`
		Wishlist   services.WishlistState `json:"wishlist"`
	}
	decodeJSON(suite.T(), w, &toggled)
	assert.False(suite.T(), toggled.InWishlist)
	assert.Len(suite.T(), toggled.Wishlist.Items, 2)

	w = performRequest(suite.router, http.MethodPost, "/api/wishlist/edit", nil)
	var state services.WishlistState
	decodeJSON(suite.T(), w, &state)
	assert.True(suite.T(), state.EditMode)

	w = performRequest(suite.router, http.MethodPost, "/api/wishlist/selection/15", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	decodeJSON(suite.T(), w, &state)
	assert.Equal(suite.T(), []int64{15}, state.Selected)

	w = performRequest(suite.router, http.MethodDelete, "/api/wishlist/selected", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	decodeJSON(suite.T(), w, &state)
	require.Len(suite.T(), state.Items, 1)
	assert.Equal(suite.T(), int64(4), state.Items[0].ID)
	assert.False(suite.T(), state.EditMode)
	assert.Empty(suite.T(), state.Selected)
}

// TestWishlist_SelectAllAndClear tests bulk selection endpoints
func (suite *CheckoutHandlerTestSuite) TestWishlist_SelectAllAndClear() {
	for _, id := range []int64{1, 2} {
		performRequest(suite.router, http.MethodPost, "/api/wishlist/toggle", map[string]int64{"food_id": id})
	}

	w := performRequest(suite.router, http.MethodPost, "/api/wishlist/selection/all", nil)
	var state services.WishlistState
	decodeJSON(suite.T(), w, &state)
	assert.ElementsMatch(suite.T(), []int64{1, 2}, state.Selected)

	w = performRequest(suite.router, http.MethodDelete, "/api/wishlist/selection", nil)
	decodeJSON(suite.T(), w, &state)
	assert.Empty(suite.T(), state.Selected)

	w = performRequest(suite.router, http.MethodPost, "/api/wishlist/selection/99", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = performRequest(suite.router, http.MethodDelete, "/api/wishlist", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	decodeJSON(suite.T(), w, &state)
	assert.Empty(suite.T(), state.Items)
}

// TestCheckoutHandlerTestSuite runs the test suite
func TestCheckoutHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/dashboard-demo-api/internal/dto"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
	"github.com/yukikurage/dashboard-demo-api/internal/middleware"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// CheckoutHandler serves the cart, the wishlist and the order history.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	foodService     *services.FoodService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService, foodService *services.FoodService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		foodService:     foodService,
	}
}

type foodRefRequest struct {
	FoodID int64 `json:"food_id" binding:"required"`
}

// GetCart returns the cart and its totals.
func (h *CheckoutHandler) GetCart(c *gin.Context) {
	h.respondCart(c, http.StatusOK)
}

// AddToCart adds one unit of a catalog food.
func (h *CheckoutHandler) AddToCart(c *gin.Context) {
	var req foodRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	food, err := h.foodService.Get(req.FoodID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	if _, err := h.checkoutService.AddToCart(c.Request.Context(), *food); err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// IncreaseQty adds one unit to a cart line.
func (h *CheckoutHandler) IncreaseQty(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	if err := h.checkoutService.IncreaseQty(c.Request.Context(), id); err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// DecreaseQty removes one unit from a cart line.
func (h *CheckoutHandler) DecreaseQty(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	if err := h.checkoutService.DecreaseQty(c.Request.Context(), id); err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// RemoveFromCart drops a cart line.
func (h *CheckoutHandler) RemoveFromCart(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	if err := h.checkoutService.RemoveFromCart(c.Request.Context(), id); err != nil {
		respondCheckoutError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// GetWishlist returns the wishlist and its selection.
func (h *CheckoutHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkoutService.Wishlist())
}

// ToggleWishlist adds or removes a catalog food.
func (h *CheckoutHandler) ToggleWishlist(c *gin.Context) {
	var req foodRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	food, err := h.foodService.Get(req.FoodID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	added, err := h.checkoutService.ToggleWishlist(c.Request.Context(), *food)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"in_wishlist": added,
		"wishlist":    h.checkoutService.Wishlist(),
	})
}

// ClearWishlist empties the wishlist.
func (h *CheckoutHandler) ClearWishlist(c *gin.Context) {
	if err := h.checkoutService.ClearWishlist(c.Request.Context()); err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.checkoutService.Wishlist())
}

// ToggleEditMode enters or leaves multi-select.
func (h *CheckoutHandler) ToggleEditMode(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkoutService.ToggleEditMode())
}

// ToggleSelect flips the selection of one wishlist item.
func (h *CheckoutHandler) ToggleSelect(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	state, err := h.checkoutService.ToggleSelect(id)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SelectAll selects every wishlist item.
func (h *CheckoutHandler) SelectAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkoutService.SelectAll())
}

// ClearSelection deselects everything.
func (h *CheckoutHandler) ClearSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkoutService.ClearSelection())
}

// RemoveSelected deletes the selected wishlist items.
func (h *CheckoutHandler) RemoveSelected(c *gin.Context) {
	state, err := h.checkoutService.RemoveSelected(c.Request.Context())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListOrders returns the order history, newest first.
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"orders": h.checkoutService.ListOrders(),
	})
}

// PlaceOrder checks out the cart.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	order, err := h.checkoutService.PlaceOrder(c.Request.Context())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// RemoveOrder deletes an order from the history.
func (h *CheckoutHandler) RemoveOrder(c *gin.Context) {
	if err := h.checkoutService.RemoveOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

func (h *CheckoutHandler) respondCart(c *gin.Context, status int) {
	c.JSON(status, dto.ToCartDTO(h.checkoutService.Cart(), h.checkoutService.Summary()))
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFoodNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrWishlistItemNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty):
		apierrors.InvalidOperation(c, "Your cart is empty")
	default:
		apierrors.OperationFailed(c, err.Error())
	}
}

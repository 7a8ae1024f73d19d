package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/dashboard-demo-api/internal/dto"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
	"github.com/yukikurage/dashboard-demo-api/internal/middleware"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// TableOrderHandler serves the order table and the client's view of it.
type TableOrderHandler struct {
	orderService *services.TableOrderService
}

// NewTableOrderHandler creates a new TableOrderHandler.
func NewTableOrderHandler(orderService *services.TableOrderService) *TableOrderHandler {
	return &TableOrderHandler{
		orderService: orderService,
	}
}

type tableOrderRequest struct {
	ID      int64              `json:"id"`
	Code    string             `json:"code"`
	Name    string             `json:"name"`
	Avatar  string             `json:"avatar"`
	Address string             `json:"address"`
	Date    string             `json:"date"`
	Price   float64            `json:"price"`
	Status  models.OrderStatus `json:"status"`
}

func (r tableOrderRequest) toInput() services.TableOrderInput {
	return services.TableOrderInput{
		ID:      r.ID,
		Code:    r.Code,
		Name:    r.Name,
		Avatar:  r.Avatar,
		Address: r.Address,
		Date:    r.Date,
		Price:   r.Price,
		Status:  r.Status,
	}
}

// ListOrders returns every order, unfiltered.
func (h *TableOrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"orders": h.orderService.List(),
	})
}

// GetOrder returns one order.
func (h *TableOrderHandler) GetOrder(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	order, err := h.orderService.Get(id)
	if err != nil {
		respondTableOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder adds an order to the table.
func (h *TableOrderHandler) CreateOrder(c *gin.Context) {
	var req tableOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondTableOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder replaces an order.
func (h *TableOrderHandler) UpdateOrder(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)

	var req tableOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondTableOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order.
func (h *TableOrderHandler) DeleteOrder(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		respondTableOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// GetView renders the current page of the client's view.
func (h *TableOrderHandler) GetView(c *gin.Context) {
	state, ok := middleware.GetOrderView(c)
	if !ok {
		apierrors.InternalError(c, "Order view not loaded")
		return
	}
	h.renderView(c, state)
}

// UpdateView changes filters or page. Any filter change returns to page 1.
func (h *TableOrderHandler) UpdateView(c *gin.Context) {
	state, ok := middleware.GetOrderView(c)
	if !ok {
		apierrors.InternalError(c, "Order view not loaded")
		return
	}

	type UpdateViewRequest struct {
		Query    *string `json:"q"`
		Status   *string `json:"status"`
		DateFrom *string `json:"date_from"`
		DateTo   *string `json:"date_to"`
		Page     *int    `json:"page"`
	}

	var req UpdateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	err := state.Apply(services.OrderViewUpdate{
		Query:    req.Query,
		Status:   req.Status,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Page:     req.Page,
	})
	if err != nil {
		respondTableOrderError(c, err)
		return
	}
	h.renderView(c, state)
}

// SetSort sorts by a column, toggling direction when it is already the sort column.
func (h *TableOrderHandler) SetSort(c *gin.Context) {
	state, ok := middleware.GetOrderView(c)
	if !ok {
		apierrors.InternalError(c, "Order view not loaded")
		return
	}

	type SetSortRequest struct {
		Key services.SortKey `json:"key" binding:"required"`
	}

	var req SetSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	if err := state.SetSort(req.Key); err != nil {
		respondTableOrderError(c, err)
		return
	}
	h.renderView(c, state)
}

// ClearView drops every filter.
func (h *TableOrderHandler) ClearView(c *gin.Context) {
	state, ok := middleware.GetOrderView(c)
	if !ok {
		apierrors.InternalError(c, "Order view not loaded")
		return
	}
	state.Clear()
	h.renderView(c, state)
}

func (h *TableOrderHandler) renderView(c *gin.Context, state *services.OrderViewState) {
	page := h.orderService.View(state)
	if err := middleware.SaveOrderView(c, state); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}
	c.JSON(http.StatusOK, dto.ToTableOrderPageDTO(page, *state))
}

func respondTableOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTableOrderNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTableOrderExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrAddressRequired),
		errors.Is(err, services.ErrDateRequired),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidOrderStatus),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidSortKey),
		errors.Is(err, services.ErrInvalidStatusFilter):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.OperationFailed(c, err.Error())
	}
}

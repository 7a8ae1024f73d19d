package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
	"github.com/yukikurage/dashboard-demo-api/internal/middleware"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

type FoodHandler struct {
	foodService *services.FoodService
}

func NewFoodHandler(foodService *services.FoodService) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
	}
}

// ListFoods returns the catalog filtered by q and category
func (h *FoodHandler) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"foods": h.foodService.Filter(c.Query("q"), c.Query("category")),
	})
}

// ListCategories returns the catalog categories
func (h *FoodHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.foodService.Categories(),
	})
}

// UpsertFood creates or updates a food
func (h *FoodHandler) UpsertFood(c *gin.Context) {
	var req models.Food
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	food, err := h.foodService.Upsert(c.Request.Context(), req)
	if err != nil {
		respondFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DeleteFood removes a food from the catalog
func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	if err := h.foodService.Remove(c.Request.Context(), id); err != nil {
		respondFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Food deleted successfully",
	})
}

// ClearFoods empties the catalog
func (h *FoodHandler) ClearFoods(c *gin.Context) {
	if err := h.foodService.ClearAll(c.Request.Context()); err != nil {
		respondFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"foods": h.foodService.List(),
	})
}

// ResetFoods restores the built-in catalog
func (h *FoodHandler) ResetFoods(c *gin.Context) {
	if err := h.foodService.ResetToSeed(c.Request.Context()); err != nil {
		respondFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"foods": h.foodService.List(),
	})
}

func respondFoodError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFoodNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFoodNameRequired),
		errors.Is(err, services.ErrInvalidFoodPrice):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.OperationFailed(c, err.Error())
	}
}

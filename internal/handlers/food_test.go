package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
	"github.com/yukikurage/dashboard-demo-api/internal/middleware"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

type foodsResponse struct {
	Foods []models.Food `json:"foods"`
}

func setupFoodRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc, err := services.NewFoodService(context.Background(), repository.NewMemorySlotRepository())
	require.NoError(t, err)
	h := NewFoodHandler(svc)

	r := newTestRouter()
	foods := r.Group("/api/foods")
	foods.GET("", h.ListFoods)
	foods.GET("/categories", h.ListCategories)
	foods.PUT("", h.UpsertFood)
	foods.DELETE("", h.ClearFoods)
	foods.POST("/reset", h.ResetFoods)
	foods.DELETE("/:id", middleware.RequireRecordID(), h.DeleteFood)
	return r
}

func TestFoodHandler_ListAndFilter(t *testing.T) {
	r := setupFoodRouter(t)

	w := performRequest(r, http.MethodGet, "/api/foods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp foodsResponse
	decodeJSON(t, w, &resp)
	assert.Len(t, resp.Foods, 18)

	w = performRequest(r, http.MethodGet, "/api/foods?category=Donuts&q=choc", nil)
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Foods, 2)
	assert.Equal(t, "Donut Choco", resp.Foods[0].Name)

	w = performRequest(r, http.MethodGet, "/api/foods/categories", nil)
	var cats struct {
		Categories []string `json:"categories"`
	}
	decodeJSON(t, w, &cats)
	assert.Equal(t, []string{"Burger", "Donuts", "Hot dog"}, cats.Categories)
}

func TestFoodHandler_UpsertAndDelete(t *testing.T) {
	r := setupFoodRouter(t)

	w := performRequest(r, http.MethodPut, "/api/foods", map[string]interface{}{
		"name":     "Fish Burger",
		"price":    21.5,
		"category": "Burger",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created models.Food
	decodeJSON(t, w, &created)
	assert.Equal(t, int64(19), created.ID)

	w = performRequest(r, http.MethodPut, "/api/foods", map[string]interface{}{"name": "", "price": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodDelete, "/api/foods/19", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = performRequest(r, http.MethodDelete, "/api/foods/19", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodHandler_ClearAndReset(t *testing.T) {
	r := setupFoodRouter(t)

	w := performRequest(r, http.MethodDelete, "/api/foods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp foodsResponse
	decodeJSON(t, w, &resp)
	assert.Empty(t, resp.Foods)

	w = performRequest(r, http.MethodPost, "/api/foods/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &resp)
	assert.Len(t, resp.Foods, 18)
}

func TestFoodHandler_MalformedBody(t *testing.T) {
	r := setupFoodRouter(t)

	w := performRequest(r, http.MethodPut, "/api/foods", "not an object")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	decodeJSON(t, w, &apiErr)
	assert.Equal(t, "Invalid request body", apiErr.Message)
	assert.NotEmpty(t, apiErr.Details)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
)

var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrFoodNameRequired = errors.New("food name is required")
	ErrInvalidFoodPrice = errors.New("food price cannot be negative")
)

// FoodService manages the burger catalog
type FoodService struct {
	store *repository.RecordStore[models.Food, int64]
}

// NewFoodService loads the catalog, seeding it on first use
func NewFoodService(ctx context.Context, slots repository.SlotRepository) (*FoodService, error) {
	store, err := repository.NewRecordStore(ctx, slots, constants.SlotFoods,
		func(f models.Food) int64 { return f.ID }, seedFoods)
	if err != nil {
		return nil, fmt.Errorf("failed to load foods: %w", err)
	}
	return &FoodService{store: store}, nil
}

// List returns the whole catalog
func (s *FoodService) List() []models.Food {
	return s.store.List()
}

// Get returns a food by ID
func (s *FoodService) Get(id int64) (*models.Food, error) {
	food, ok := s.store.GetByID(id)
	if !ok {
		return nil, ErrFoodNotFound
	}
	return &food, nil
}

// Filter matches name case-insensitively and category exactly. Empty arguments match all.
func (s *FoodService) Filter(query, category string) []models.Food {
	q := strings.ToLower(strings.TrimSpace(query))
	foods := s.store.List()
	out := make([]models.Food, 0, len(foods))
	for _, f := range foods {
		if category != "" && f.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(f.Name), q) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Categories returns distinct categories in first-seen order
func (s *FoodService) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, f := range s.store.List() {
		if f.Category == "" || seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		categories = append(categories, f.Category)
	}
	return categories
}

// Upsert inserts or updates a food. ID 0 gets the next free ID; an unknown
// ID is appended as is.
func (s *FoodService) Upsert(ctx context.Context, food models.Food) (*models.Food, error) {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return nil, ErrFoodNameRequired
	}
	if food.Price < 0 {
		return nil, ErrInvalidFoodPrice
	}
	food.Category = strings.TrimSpace(food.Category)

	err := s.store.Mutate(ctx, func(items []models.Food) ([]models.Food, error) {
		var maxID int64
		for i := range items {
			if food.ID != 0 && items[i].ID == food.ID {
				items[i] = mergeFood(items[i], food)
				food = items[i]
				return items, nil
			}
			if items[i].ID > maxID {
				maxID = items[i].ID
			}
		}
		if food.ID == 0 {
			food.ID = maxID + 1
		}
		return append(items, food), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save food: %w", err)
	}

	return &food, nil
}

// Remove deletes a food from the catalog
func (s *FoodService) Remove(ctx context.Context, id int64) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove food: %w", err)
	}
	if !found {
		return ErrFoodNotFound
	}
	return nil
}

// ClearAll empties the catalog
func (s *FoodService) ClearAll(ctx context.Context) error {
	if err := s.store.Replace(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear foods: %w", err)
	}
	return nil
}

// ResetToSeed restores the built-in catalog
func (s *FoodService) ResetToSeed(ctx context.Context) error {
	if err := s.store.Replace(ctx, seedFoods()); err != nil {
		return fmt.Errorf("failed to reset foods: %w", err)
	}
	return nil
}

// mergeFood overlays the set fields of patch onto existing
func mergeFood(existing, patch models.Food) models.Food {
	existing.Name = patch.Name
	existing.Price = patch.Price
	if patch.OldPrice != nil {
		existing.OldPrice = patch.OldPrice
	}
	if patch.Rating != nil {
		existing.Rating = patch.Rating
	}
	if patch.Img != "" {
		existing.Img = patch.Img
	}
	if patch.Category != "" {
		existing.Category = patch.Category
	}
	return existing
}

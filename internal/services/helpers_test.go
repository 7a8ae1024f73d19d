package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
)

var errStorageDown = errors.New("storage unavailable")

// switchableSlots is an in-memory slot repository whose writes can be turned off
type switchableSlots struct {
	*repository.MemorySlotRepository
	failSet    bool
	failDelete bool
	failKeys   map[string]bool
}

func newSwitchableSlots() *switchableSlots {
	return &switchableSlots{MemorySlotRepository: repository.NewMemorySlotRepository()}
}

func (s *switchableSlots) Set(ctx context.Context, key, value string) error {
	if s.failSet || s.failKeys[key] {
		return errStorageDown
	}
	return s.MemorySlotRepository.Set(ctx, key, value)
}

func (s *switchableSlots) Delete(ctx context.Context, key string) error {
	if s.failDelete {
		return errStorageDown
	}
	return s.MemorySlotRepository.Delete(ctx, key)
}

func makeOrders(n int) []models.TableOrder {
	orders := make([]models.TableOrder, n)
	base := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := range orders {
		orders[i] = models.TableOrder{
			ID:      int64(i + 1),
			Code:    fmt.Sprintf("#%04d", i+1),
			Name:    fmt.Sprintf("Customer %d", i+1),
			Address: fmt.Sprintf("%d Main Street", i+1),
			Date:    base.AddDate(0, 0, i).Format(time.DateOnly),
			Price:   float64(10 + i),
			Status:  models.OrderStatusPending,
		}
	}
	return orders
}

func orderIDs(orders []models.TableOrder) []int64 {
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

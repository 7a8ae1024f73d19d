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
	ErrTableOrderNotFound = errors.New("order not found")
	ErrTableOrderExists   = errors.New("order with this id already exists")
	ErrNameRequired       = errors.New("name is required")
	ErrAddressRequired    = errors.New("address is required")
	ErrDateRequired       = errors.New("date is required")
	ErrInvalidOrderStatus = errors.New("status must be one of Pending, Dispatch, Completed")
	ErrInvalidPrice       = errors.New("price cannot be negative")
)

const defaultAvatar = "https://i.pravatar.cc/40?img=1"

// TableOrderService handles the order table records
type TableOrderService struct {
	store *repository.RecordStore[models.TableOrder, int64]
}

// NewTableOrderService loads the order table, seeding it on first use
func NewTableOrderService(ctx context.Context, slots repository.SlotRepository) (*TableOrderService, error) {
	store, err := repository.NewRecordStore(ctx, slots, constants.SlotTableOrders,
		func(o models.TableOrder) int64 { return o.ID }, seedTableOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to load table orders: %w", err)
	}
	return &TableOrderService{store: store}, nil
}

// TableOrderInput represents the editable fields of an order row
type TableOrderInput struct {
	ID      int64
	Code    string
	Name    string
	Avatar  string
	Address string
	Date    string
	Price   float64
	Status  models.OrderStatus
}

// List returns every order in stored order
func (s *TableOrderService) List() []models.TableOrder {
	return s.store.List()
}

// Get returns an order by ID
func (s *TableOrderService) Get(id int64) (*models.TableOrder, error) {
	order, ok := s.store.GetByID(id)
	if !ok {
		return nil, ErrTableOrderNotFound
	}
	return &order, nil
}

// Create appends a new order. A zero ID is replaced by the next free one.
func (s *TableOrderService) Create(ctx context.Context, input TableOrderInput) (*models.TableOrder, error) {
	order, err := buildTableOrder(input)
	if err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, func(items []models.TableOrder) ([]models.TableOrder, error) {
		var maxID int64
		for _, o := range items {
			if o.ID == order.ID && order.ID != 0 {
				return nil, ErrTableOrderExists
			}
			if o.ID > maxID {
				maxID = o.ID
			}
		}
		if order.ID == 0 {
			order.ID = maxID + 1
		}
		if order.Code == "" {
			order.Code = fmt.Sprintf("#%d", order.ID)
		}
		return append(items, order), nil
	})
	if err != nil {
		if errors.Is(err, ErrTableOrderExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &order, nil
}

// Update replaces an existing order. Code and avatar are kept when left empty.
func (s *TableOrderService) Update(ctx context.Context, id int64, input TableOrderInput) (*models.TableOrder, error) {
	existing, ok := s.store.GetByID(id)
	if !ok {
		return nil, ErrTableOrderNotFound
	}

	input.ID = id
	if input.Code == "" {
		input.Code = existing.Code
	}
	if input.Avatar == "" {
		input.Avatar = existing.Avatar
	}

	order, err := buildTableOrder(input)
	if err != nil {
		return nil, err
	}

	found, err := s.store.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if !found {
		return nil, ErrTableOrderNotFound
	}

	return &order, nil
}

// Delete removes an order
func (s *TableOrderService) Delete(ctx context.Context, id int64) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !found {
		return ErrTableOrderNotFound
	}
	return nil
}

// View renders the current page of the order table for the given view state
func (s *TableOrderService) View(state *OrderViewState) OrderPage {
	return state.Render(s.store.List())
}

func buildTableOrder(input TableOrderInput) (models.TableOrder, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.TableOrder{}, ErrNameRequired
	}
	address := strings.TrimSpace(input.Address)
	if address == "" {
		return models.TableOrder{}, ErrAddressRequired
	}
	if strings.TrimSpace(input.Date) == "" {
		return models.TableOrder{}, ErrDateRequired
	}
	if _, ok := parseOrderDate(input.Date); !ok {
		return models.TableOrder{}, ErrInvalidDate
	}
	if input.Status == "" {
		input.Status = models.OrderStatusPending
	}
	if !input.Status.Valid() {
		return models.TableOrder{}, ErrInvalidOrderStatus
	}
	if input.Price < 0 {
		return models.TableOrder{}, ErrInvalidPrice
	}
	if input.Avatar == "" {
		input.Avatar = defaultAvatar
	}

	return models.TableOrder{
		ID:      input.ID,
		Code:    strings.TrimSpace(input.Code),
		Name:    name,
		Avatar:  input.Avatar,
		Address: address,
		Date:    input.Date,
		Price:   input.Price,
		Status:  input.Status,
	}, nil
}

package dto

import (
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// OrderViewDTO echoes the client's view settings
type OrderViewDTO struct {
	Query    string                 `json:"q"`
	Status   string                 `json:"status"`
	DateFrom string                 `json:"date_from"`
	DateTo   string                 `json:"date_to"`
	SortKey  services.SortKey       `json:"sort_key"`
	SortDir  services.SortDirection `json:"sort_dir"`
}

// TableOrderPageDTO represents one page of the order table
type TableOrderPageDTO struct {
	Orders     []models.TableOrder `json:"orders"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalCount int                 `json:"total_count"`
	TotalPages int                 `json:"total_pages"`
	StartIndex int                 `json:"start_index"`
	EndIndex   int                 `json:"end_index"`
	View       OrderViewDTO        `json:"view"`
}

// ToTableOrderPageDTO combines a rendered page with the state that produced it
func ToTableOrderPageDTO(page services.OrderPage, state services.OrderViewState) TableOrderPageDTO {
	orders := page.Items
	if orders == nil {
		orders = []models.TableOrder{}
	}
	return TableOrderPageDTO{
		Orders:     orders,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		StartIndex: page.StartIndex,
		EndIndex:   page.EndIndex,
		View: OrderViewDTO{
			Query:    state.Query,
			Status:   state.Status,
			DateFrom: state.DateFrom,
			DateTo:   state.DateTo,
			SortKey:  state.SortKey,
			SortDir:  state.SortDir,
		},
	}
}

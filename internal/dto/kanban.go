package dto

import (
	"github.com/yukikurage/dashboard-demo-api/internal/models"
)

// BoardColumnDTO represents a column with its cards
type BoardColumnDTO struct {
	ID    models.TaskStatus `json:"id"`
	Title string            `json:"title"`
	Count int               `json:"count"`
	Tasks []models.TaskCard `json:"tasks"`
}

// BoardDTO represents the whole kanban board
type BoardDTO struct {
	Columns    []BoardColumnDTO `json:"columns"`
	TotalTasks int              `json:"total_tasks"`
}

// ToBoardDTO groups tasks under their columns, keeping collection order
func ToBoardDTO(columns []models.BoardColumn, tasks []models.TaskCard) BoardDTO {
	board := BoardDTO{
		Columns:    make([]BoardColumnDTO, len(columns)),
		TotalTasks: len(tasks),
	}
	for i, col := range columns {
		board.Columns[i] = BoardColumnDTO{
			ID:    col.ID,
			Title: col.Title,
			Tasks: []models.TaskCard{},
		}
		for _, t := range tasks {
			if t.Status == col.ID {
				board.Columns[i].Tasks = append(board.Columns[i].Tasks, t)
			}
		}
		board.Columns[i].Count = len(board.Columns[i].Tasks)
	}
	return board
}

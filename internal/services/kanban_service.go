package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
)

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrTitleRequired          = errors.New("title is required")
	ErrInvalidTaskStatus      = errors.New("status must be one of todo, in-progress, review, done")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be created from AI output")
	ErrTextRequired           = errors.New("text is required")
)

var boardColumns = []models.BoardColumn{
	{ID: models.TaskStatusTodo, Title: "Todo list"},
	{ID: models.TaskStatusInProgress, Title: "In Progress"},
	{ID: models.TaskStatusReview, Title: "In Review"},
	{ID: models.TaskStatusDone, Title: "Done"},
}

// KanbanService handles task board business logic
type KanbanService struct {
	store     *repository.RecordStore[models.TaskCard, int64]
	aiService *AIService
	now       func() time.Time
}

// NewKanbanService loads the board, seeding it on first use
func NewKanbanService(ctx context.Context, slots repository.SlotRepository, aiService *AIService) (*KanbanService, error) {
	store, err := repository.NewRecordStore(ctx, slots, constants.SlotKanbanTasks,
		func(t models.TaskCard) int64 { return t.ID }, seedTaskCards)
	if err != nil {
		return nil, fmt.Errorf("failed to load kanban tasks: %w", err)
	}
	return &KanbanService{
		store:     store,
		aiService: aiService,
		now:       time.Now,
	}, nil
}

// TaskPatch represents a partial update of a card. Nil fields are kept.
type TaskPatch struct {
	Title           *string
	Description     *string
	Tags            *[]string
	Status          *models.TaskStatus
	Category        *string
	Time            *string
	Comments        *int
	Attachments     *int
	People          *[]string
	Progress        *int
	ProgressPercent *int
	Note            *string
}

// TaskMetaInput updates the progress and tags of a card
type TaskMetaInput struct {
	ProgressPercent *int
	Tags            *[]string
}

// Columns returns the fixed board columns
func (s *KanbanService) Columns() []models.BoardColumn {
	out := make([]models.BoardColumn, len(boardColumns))
	copy(out, boardColumns)
	return out
}

// TotalTasks returns the number of cards on the board
func (s *KanbanService) TotalTasks() int {
	return s.store.Len()
}

// ListTasks returns every card in board order
func (s *KanbanService) ListTasks() []models.TaskCard {
	return s.store.List()
}

// GetTask returns a card by ID
func (s *KanbanService) GetTask(id int64) (*models.TaskCard, error) {
	task, ok := s.store.GetByID(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	return &task, nil
}

// GetTasksByStatus returns the cards of one column in collection order
func (s *KanbanService) GetTasksByStatus(status models.TaskStatus) ([]models.TaskCard, error) {
	if !status.Valid() {
		return nil, ErrInvalidTaskStatus
	}
	tasks := s.store.List()
	out := make([]models.TaskCard, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

// AddTask creates a card with default metadata at the end of the board
func (s *KanbanService) AddTask(ctx context.Context, status models.TaskStatus, title, description string) (*models.TaskCard, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if !status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	created := s.now()
	task := models.TaskCard{
		Title:       title,
		Description: description,
		Tags:        []string{"#new"},
		Status:      status,
		People:      []string{"BS"},
		Time:        formatCreatedTime(created, s.now()),
		Bg:          models.StatusGradient(status),
	}

	err := s.store.Mutate(ctx, func(items []models.TaskCard) ([]models.TaskCard, error) {
		task.ID = nextTaskID(items, created)
		return append(items, task), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

// EditTaskFull merges patch into a card. A status change recomputes the gradient.
func (s *KanbanService) EditTaskFull(ctx context.Context, id int64, patch TaskPatch) (*models.TaskCard, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrTitleRequired
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	return s.updateTask(ctx, id, func(t *models.TaskCard) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Tags != nil {
			t.Tags = cleanTags(*patch.Tags)
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Time != nil {
			t.Time = *patch.Time
		}
		if patch.Comments != nil {
			t.Comments = *patch.Comments
		}
		if patch.Attachments != nil {
			t.Attachments = *patch.Attachments
		}
		if patch.People != nil {
			t.People = append([]string(nil), (*patch.People)...)
		}
		if patch.Progress != nil {
			t.Progress = clamp(*patch.Progress, 0, constants.ProgressDotCount)
		}
		if patch.ProgressPercent != nil {
			t.ProgressPercent = clamp(*patch.ProgressPercent, 0, 100)
		}
		if patch.Note != nil {
			t.Note = *patch.Note
		}
		if patch.Status != nil {
			t.Status = *patch.Status
			t.Bg = models.StatusGradient(t.Status)
		}
	})
}

// MoveTask changes only the status, together with its gradient
func (s *KanbanService) MoveTask(ctx context.Context, id int64, status models.TaskStatus) (*models.TaskCard, error) {
	if !status.Valid() {
		return nil, ErrInvalidTaskStatus
	}
	return s.updateTask(ctx, id, func(t *models.TaskCard) {
		t.Status = status
		t.Bg = models.StatusGradient(status)
	})
}

// UpdateTaskMeta sets progress percent (and the matching dot count) and tags
func (s *KanbanService) UpdateTaskMeta(ctx context.Context, id int64, input TaskMetaInput) (*models.TaskCard, error) {
	return s.updateTask(ctx, id, func(t *models.TaskCard) {
		if input.ProgressPercent != nil {
			percent := clamp(*input.ProgressPercent, 0, 100)
			t.ProgressPercent = percent
			t.Progress = progressDots(percent)
		}
		if input.Tags != nil {
			t.Tags = cleanTags(*input.Tags)
		}
	})
}

// DeleteTask removes a card
func (s *KanbanService) DeleteTask(ctx context.Context, id int64) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}

// GenerateTasks uses AI to draft cards from free text. Drafts are not saved.
func (s *KanbanService) GenerateTasks(ctx context.Context, text string) ([]GeneratedTask, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if s.aiService == nil {
		return nil, ErrAIServiceNotConfigured
	}

	aiTasks, err := s.aiService.GenerateTasksFromText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	if len(aiTasks) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(aiTasks) > constants.MaxAIGeneratedTasks {
		return nil, fmt.Errorf("AI generated too many tasks (max %d)", constants.MaxAIGeneratedTasks)
	}

	validTasks := make([]GeneratedTask, 0, len(aiTasks))
	for _, aiTask := range aiTasks {
		if strings.TrimSpace(aiTask.Title) == "" {
			continue
		}
		if !aiTask.Status.Valid() {
			aiTask.Status = models.TaskStatusTodo
		}
		aiTask.Tags = cleanTags(aiTask.Tags)
		validTasks = append(validTasks, aiTask)
	}

	if len(validTasks) == 0 {
		return nil, ErrAINoValidTasks
	}

	return validTasks, nil
}

func (s *KanbanService) updateTask(ctx context.Context, id int64, apply func(t *models.TaskCard)) (*models.TaskCard, error) {
	var updated models.TaskCard
	err := s.store.Mutate(ctx, func(items []models.TaskCard) ([]models.TaskCard, error) {
		for i := range items {
			if items[i].ID == id {
				apply(&items[i])
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrTaskNotFound
	})
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &updated, nil
}

// nextTaskID uses the creation time in milliseconds, bumped past existing IDs
func nextTaskID(items []models.TaskCard, created time.Time) int64 {
	id := created.UnixMilli()
	for _, t := range items {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// formatCreatedTime renders "Today · 3:04 PM" or "Jan 2 · 3:04 PM"
func formatCreatedTime(created, now time.Time) string {
	timeStr := created.Format("3:04 PM")
	cy, cm, cd := created.Date()
	ny, nm, nd := now.Date()
	if cy == ny && cm == nm && cd == nd {
		return "Today · " + timeStr
	}
	return created.Format("Jan 2") + " · " + timeStr
}

func progressDots(percent int) int {
	return int(math.Round(float64(percent) / 100 * constants.ProgressDotCount))
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

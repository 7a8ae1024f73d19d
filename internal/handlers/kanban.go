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

type KanbanHandler struct {
	kanbanService *services.KanbanService
}

func NewKanbanHandler(kanbanService *services.KanbanService) *KanbanHandler {
	return &KanbanHandler{
		kanbanService: kanbanService,
	}
}

// GetBoard returns the columns with their cards
func (h *KanbanHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToBoardDTO(h.kanbanService.Columns(), h.kanbanService.ListTasks()))
}

// ListTasks returns all cards, or one column's cards when status is given
func (h *KanbanHandler) ListTasks(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusOK, gin.H{
			"tasks": h.kanbanService.ListTasks(),
			"total": h.kanbanService.TotalTasks(),
		})
		return
	}

	tasks, err := h.kanbanService.GetTasksByStatus(models.TaskStatus(status))
	if err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetTask returns a specific card
func (h *KanbanHandler) GetTask(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	task, err := h.kanbanService.GetTask(id)
	if err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask adds a card to a column
func (h *KanbanHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Status      models.TaskStatus `json:"status" binding:"required"`
		Title       string            `json:"title"`
		Description string            `json:"description"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.kanbanService.AddTask(c.Request.Context(), req.Status, req.Title, req.Description)
	if err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates only the provided fields of a card
func (h *KanbanHandler) UpdateTask(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)

	type UpdateTaskRequest struct {
		Title           *string            `json:"title"`
		Description     *string            `json:"description"`
		Tags            *[]string          `json:"tags"`
		Status          *models.TaskStatus `json:"status"`
		Category        *string            `json:"category"`
		Time            *string            `json:"time"`
		Comments        *int               `json:"comments"`
		Attachments     *int               `json:"attachments"`
		People          *[]string          `json:"people"`
		Progress        *int               `json:"progress"`
		ProgressPercent *int               `json:"progress_percent"`
		Note            *string            `json:"note"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.kanbanService.EditTaskFull(c.Request.Context(), id, services.TaskPatch{
		Title:           req.Title,
		Description:     req.Description,
		Tags:            req.Tags,
		Status:          req.Status,
		Category:        req.Category,
		Time:            req.Time,
		Comments:        req.Comments,
		Attachments:     req.Attachments,
		People:          req.People,
		Progress:        req.Progress,
		ProgressPercent: req.ProgressPercent,
		Note:            req.Note,
	})
	if err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// MoveTask moves a card to another column
func (h *KanbanHandler) MoveTask(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)

	type MoveTaskRequest struct {
		Status models.TaskStatus `json:"status" binding:"required"`
	}

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.kanbanService.MoveTask(c.Request.Context(), id, req.Status)
	if err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskMeta sets progress and tags of a card
func (h *KanbanHandler) UpdateTaskMeta(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)

	type UpdateMetaRequest struct {
		ProgressPercent *int      `json:"progress_percent"`
		Tags            *[]string `json:"tags"`
	}

	var req UpdateMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.kanbanService.UpdateTaskMeta(c.Request.Context(), id, services.TaskMetaInput{
		ProgressPercent: req.ProgressPercent,
		Tags:            req.Tags,
	})
	if err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a card
func (h *KanbanHandler) DeleteTask(c *gin.Context) {
	id, _ := middleware.GetRecordID(c)
	if err := h.kanbanService.DeleteTask(c.Request.Context(), id); err != nil {
		respondKanbanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// GenerateTasks drafts cards from free text using AI
func (h *KanbanHandler) GenerateTasks(c *gin.Context) {
	type GenerateTasksRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req GenerateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	generatedTasks, err := h.kanbanService.GenerateTasks(c.Request.Context(), req.Text)
	if err != nil {
		respondKanbanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": generatedTasks,
	})
}

func respondKanbanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrTextRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "AI service is not configured. Please set OPENAI_API_KEY environment variable.")
	case errors.Is(err, services.ErrAINoTasksGenerated),
		errors.Is(err, services.ErrAINoValidTasks):
		apierrors.InvalidOperation(c, err.Error())
	default:
		apierrors.InternalError(c, err.Error())
	}
}

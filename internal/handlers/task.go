package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castillotomupwork/task/internal/dto"
	apierrors "github.com/castillotomupwork/task/internal/errors"
	"github.com/castillotomupwork/task/internal/middleware"
	"github.com/castillotomupwork/task/internal/repository"
	"github.com/castillotomupwork/task/internal/services"
	"github.com/castillotomupwork/task/internal/utils"
	"github.com/castillotomupwork/task/internal/validators"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
	userRepo    repository.UserRepository
}

// NewTaskHandler creates a new TaskHandler. The user repository backs the
// assignedTo/createdBy existence checks in the validators.
func NewTaskHandler(taskService *services.TaskService, userRepo repository.UserRepository) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		userRepo:    userRepo,
	}
}

// CreateTask validates and creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	var req validators.StoreTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, fieldErrs, err := validators.ValidateStoreTask(h.userRepo, tr, req)
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}
	if len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	task, err := h.taskService.Create(*input)
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(task))
}

// ListTasks returns one sorted page of tasks, each row decorated with the
// localized status/priority labels and the display names of the assignee and
// creator. The total always reflects the full filtered count, whatever page
// window was requested.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	sortBy, order := utils.GetSortParams(c)
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.List(repository.TaskListQuery{
		SortBy: sortBy,
		Order:  order,
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OKList(dto.ToTaskListItemDTOs(tasks, tr), total))
}

// GetTask returns one task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	task, err := h.taskService.GetByID(c.Param("id"))
	if errors.Is(err, services.ErrTaskNotFound) {
		apierrors.NotFound(c, tr("task.notFound", nil))
		return
	}
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(task))
}

// UpdateTask validates and applies a full update to an existing task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	tr := middleware.GetTranslator(c)
	id := c.Param("id")

	if _, err := h.taskService.GetByID(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, tr("task.notFound", nil))
		} else {
			apierrors.Internal(c, tr("internalError", nil), err)
		}
		return
	}

	req := validators.UpdateTaskRequest{ID: id}
	if err := c.ShouldBindJSON(&req.StoreTaskRequest); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, fieldErrs, err := validators.ValidateUpdateTask(h.userRepo, tr, req)
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}
	if len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	task, err := h.taskService.Update(id, *input)
	if errors.Is(err, services.ErrTaskNotFound) {
		apierrors.NotFound(c, tr("task.notFound", nil))
		return
	}
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(task))
}

// DeleteTask soft-deletes a task. Deleting an already-deleted task answers
// not-found because the lookup excludes flagged rows.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	task, err := h.taskService.SoftDelete(c.Param("id"))
	if errors.Is(err, services.ErrTaskNotFound) {
		apierrors.NotFound(c, tr("task.notFound", nil))
		return
	}
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(task))
}

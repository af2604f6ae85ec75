package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/castillotomupwork/task/internal/models"
	"github.com/castillotomupwork/task/internal/repository"
	"github.com/castillotomupwork/task/internal/validators"
)

// ErrTaskNotFound is returned when no non-deleted task matches the given ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create persists a new task from validated input.
func (s *TaskService) Create(input validators.TaskInput) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns one page of non-deleted tasks with assignee and creator rows
// loaded, and the total count under the same filter.
func (s *TaskService) List(q repository.TaskListQuery) ([]models.Task, int64, error) {
	return s.taskRepo.List(q)
}

// GetByID returns a non-deleted task or ErrTaskNotFound.
func (s *TaskService) GetByID(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Update applies a validated full update to an existing task.
func (s *TaskService) Update(id string, input validators.TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.DueDate = input.DueDate
	task.Priority = input.Priority
	task.AssignedTo = input.AssignedTo
	task.CreatedBy = input.CreatedBy

	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

// SoftDelete flips the IsDeleted flag and keeps the row. Deleting an
// already-deleted task reports ErrTaskNotFound.
func (s *TaskService) SoftDelete(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.IsDeleted = true
	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

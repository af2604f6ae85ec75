package dto

import (
	"time"

	"github.com/castillotomupwork/task/internal/i18n"
	"github.com/castillotomupwork/task/internal/models"
)

// dueDateDisplayFormat is the MM-DD-YYYY rendering used in list screens.
const dueDateDisplayFormat = "01-02-2006"

// TaskListItemDTO represents a task in list responses, decorated with
// localized labels and the display names of the referenced users.
type TaskListItemDTO struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Status           models.TaskStatus   `json:"status"`
	StatusLabel      string              `json:"statusLabel"`
	Priority         models.TaskPriority `json:"priority"`
	PriorityLabel    string              `json:"priorityLabel"`
	DueDate          models.DateOnly     `json:"dueDate"`
	DueDateFormatted string              `json:"dueDateFormatted"`
	AssignedTo       string              `json:"assignedTo"`
	AssignedToName   string              `json:"assignedToName"`
	CreatedBy        string              `json:"createdBy"`
	CreatedByName    string              `json:"createdByName"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// ToTaskListItemDTO converts a Task with preloaded user rows into its list
// representation. Labels are resolved through the request's translator.
func ToTaskListItemDTO(task models.Task, tr i18n.Translator) TaskListItemDTO {
	return TaskListItemDTO{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		Status:           task.Status,
		StatusLabel:      tr("task.status."+string(task.Status), nil),
		Priority:         task.Priority,
		PriorityLabel:    tr("task.priority."+string(task.Priority), nil),
		DueDate:          task.DueDate,
		DueDateFormatted: task.DueDate.Time().Format(dueDateDisplayFormat),
		AssignedTo:       task.AssignedTo,
		AssignedToName:   task.Assignee.Name,
		CreatedBy:        task.CreatedBy,
		CreatedByName:    task.Creator.Name,
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}
}

// ToTaskListItemDTOs converts a page of tasks.
func ToTaskListItemDTOs(tasks []models.Task, tr i18n.Translator) []TaskListItemDTO {
	items := make([]TaskListItemDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskListItemDTO(task, tr)
	}
	return items
}

package validators

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/castillotomupwork/task/internal/i18n"
	"github.com/castillotomupwork/task/internal/models"
	"github.com/castillotomupwork/task/internal/repository"
)

// StoreTaskRequest is the raw body of a task create call.
type StoreTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	AssignedTo  *string `json:"assignedTo"`
	CreatedBy   *string `json:"createdBy"`
}

// UpdateTaskRequest is the raw body of a task update call plus the path id.
type UpdateTaskRequest struct {
	ID string `json:"-"`
	StoreTaskRequest
}

// TaskInput is a validated task payload ready for the service layer.
type TaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	DueDate     models.DateOnly
	Priority    models.TaskPriority
	AssignedTo  string
	CreatedBy   string
}

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateStoreTask validates a task create request against the current
// server-local date and the user store.
func ValidateStoreTask(users repository.UserRepository, tr i18n.Translator, req StoreTaskRequest) (*TaskInput, []FieldError, error) {
	return validateTask(users, tr, req, time.Now())
}

// ValidateUpdateTask validates a task update request. The rules match task
// creation plus a required id.
func ValidateUpdateTask(users repository.UserRepository, tr i18n.Translator, req UpdateTaskRequest) (*TaskInput, []FieldError, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, []FieldError{{Field: "id", Message: tr("task.validation.id.required", nil)}}, nil
	}
	return validateTask(users, tr, req.StoreTaskRequest, time.Now())
}

func validateTask(users repository.UserRepository, tr i18n.Translator, req StoreTaskRequest, now time.Time) (*TaskInput, []FieldError, error) {
	var errs []FieldError
	input := &TaskInput{}

	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: tr("task.validation.title.required", nil)})
	} else {
		input.Title = strings.TrimSpace(*req.Title)
	}

	if req.Description != nil {
		input.Description = *req.Description
	}

	switch {
	case req.Status == nil:
		errs = append(errs, FieldError{Field: "status", Message: tr("task.validation.status.required", nil)})
	case !models.ValidTaskStatus(*req.Status):
		errs = append(errs, FieldError{Field: "status", Message: tr("task.validation.status.invalid", nil)})
	default:
		input.Status = models.TaskStatus(*req.Status)
	}

	if req.DueDate == nil {
		errs = append(errs, FieldError{Field: "dueDate", Message: tr("task.validation.dueDate.required", nil)})
	} else if due, fieldErr := parseDueDate(tr, *req.DueDate, now); fieldErr != nil {
		errs = append(errs, *fieldErr)
	} else {
		input.DueDate = due
	}

	switch {
	case req.Priority == nil:
		errs = append(errs, FieldError{Field: "priority", Message: tr("task.validation.priority.required", nil)})
	case !models.ValidTaskPriority(*req.Priority):
		errs = append(errs, FieldError{Field: "priority", Message: tr("task.validation.priority.invalid", nil)})
	default:
		input.Priority = models.TaskPriority(*req.Priority)
	}

	for _, ref := range []struct {
		field string
		value *string
		dest  *string
	}{
		{"assignedTo", req.AssignedTo, &input.AssignedTo},
		{"createdBy", req.CreatedBy, &input.CreatedBy},
	} {
		fieldErr, err := validateUserRef(users, tr, ref.field, ref.value)
		if err != nil {
			return nil, nil, err
		}
		if fieldErr != nil {
			errs = append(errs, *fieldErr)
			continue
		}
		*ref.dest = *ref.value
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return input, nil, nil
}

// parseDueDate enforces the YYYY-MM-DD syntax, rejects impossible calendar
// dates (time.Parse catches day-of-month overflow) and rejects dates strictly
// before today in the server's local time.
func parseDueDate(tr i18n.Translator, value string, now time.Time) (models.DateOnly, *FieldError) {
	var zero models.DateOnly

	if !dueDatePattern.MatchString(value) {
		return zero, &FieldError{Field: "dueDate", Message: tr("task.validation.dueDate.format", nil)}
	}

	due, err := time.ParseInLocation(time.DateOnly, value, now.Location())
	if err != nil {
		return zero, &FieldError{Field: "dueDate", Message: tr("task.validation.dueDate.invalid", nil)}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		return zero, &FieldError{Field: "dueDate", Message: tr("task.validation.dueDate.future", nil)}
	}

	return models.DateOnly(due), nil
}

// validateUserRef checks that a user reference is present, syntactically a
// valid identifier, and resolves to an existing non-deleted user.
func validateUserRef(users repository.UserRepository, tr i18n.Translator, field string, value *string) (*FieldError, error) {
	if value == nil || *value == "" {
		return &FieldError{Field: field, Message: tr("task.validation."+field+".required", nil)}, nil
	}

	if _, err := uuid.Parse(*value); err != nil {
		return &FieldError{Field: field, Message: tr("task.validation."+field+".invalid", nil)}, nil
	}

	user, err := users.FindByID(*value)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &FieldError{Field: field, Message: tr("task.validation."+field+".notFound", nil)}, nil
	}

	return nil, nil
}

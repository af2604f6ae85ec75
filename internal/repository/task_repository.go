package repository

import (
	"errors"

	"github.com/castillotomupwork/task/internal/database"
	"github.com/castillotomupwork/task/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// sortColumns maps whitelisted sort keys to their column names.
var sortColumns = map[string]string{
	"title":    "tasks.title",
	"dueDate":  "tasks.due_date",
	"priority": "tasks.priority",
	"status":   "tasks.status",
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a non-deleted task by ID
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves non-deleted tasks ordered and paginated per q. The total is
// counted with the same filter as the page fetch.
func (r *GormTaskRepository) List(q TaskListQuery) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("tasks.is_deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = sortColumns["dueDate"]
	}
	direction := "ASC"
	if q.Order == "desc" {
		direction = "DESC"
	}

	listQuery := query.Order(column + " " + direction).
		Scopes(database.Paginate(q.Page, q.Limit))

	var tasks []models.Task
	if err := listQuery.Preload("Assignee").Preload("Creator").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update persists changes to an existing task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

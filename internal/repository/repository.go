package repository

import "github.com/castillotomupwork/task/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindAll retrieves every user that is not soft-deleted
	FindAll() ([]models.User, error)

	// FindByID finds a non-deleted user by ID, returning nil when absent
	FindByID(id string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error

	// UsernameTaken reports whether the username is used by any row other
	// than excludeID. Soft-deleted rows count: a deleted user's username
	// stays reserved.
	UsernameTaken(username, excludeID string) (bool, error)

	// EmailTaken reports whether the email is used by any row other than
	// excludeID, with the same soft-delete semantics as UsernameTaken.
	EmailTaken(email, excludeID string) (bool, error)
}

// TaskListQuery holds sorting and pagination options for listing tasks.
// SortBy must already be a whitelisted column key.
type TaskListQuery struct {
	SortBy string
	Order  string
	Page   int
	Limit  int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a non-deleted task by ID, returning nil when absent
	FindByID(id string) (*models.Task, error)

	// List retrieves non-deleted tasks with assignee and creator preloaded,
	// plus the total count computed under the same filter
	List(q TaskListQuery) ([]models.Task, int64, error)

	// Update persists changes to an existing task
	Update(task *models.Task) error
}

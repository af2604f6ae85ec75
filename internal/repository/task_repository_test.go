package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/castillotomupwork/task/internal/models"
)

func seedTask(t *testing.T, db *gorm.DB, title, dueDate string, priority models.TaskPriority, assignee, creator *models.User) *models.Task {
	due, err := time.Parse(time.DateOnly, dueDate)
	require.NoError(t, err)

	task := &models.Task{
		ID:         uuid.NewString(),
		Title:      title,
		Status:     models.TaskStatusPending,
		DueDate:    models.DateOnly(due),
		Priority:   priority,
		AssignedTo: assignee.ID,
		CreatedBy:  creator.ID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestTaskList_SortsAndPreloadsUsers(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	assignee := seedUser(t, db, "worker", false)
	creator := seedUser(t, db, "manager", false)

	seedTask(t, db, "late", "2032-01-01", models.TaskPriorityLow, assignee, creator)
	seedTask(t, db, "soon", "2030-01-01", models.TaskPriorityHigh, assignee, creator)

	tasks, total, err := repo.List(TaskListQuery{SortBy: "dueDate", Order: "asc"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, tasks, 2)
	assert.Equal(t, "soon", tasks[0].Title)
	assert.Equal(t, "worker name", tasks[0].Assignee.Name)
	assert.Equal(t, "manager name", tasks[0].Creator.Name)
}

func TestTaskList_UnknownSortKeyFallsBackToDueDate(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	assignee := seedUser(t, db, "worker", false)
	creator := seedUser(t, db, "manager", false)

	seedTask(t, db, "late", "2032-01-01", models.TaskPriorityLow, assignee, creator)
	seedTask(t, db, "soon", "2030-01-01", models.TaskPriorityLow, assignee, creator)

	tasks, _, err := repo.List(TaskListQuery{SortBy: "; DROP TABLE tasks", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "soon", tasks[0].Title)
}

func TestTaskList_TotalIgnoresWindow(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	assignee := seedUser(t, db, "worker", false)
	creator := seedUser(t, db, "manager", false)

	for _, day := range []string{"2030-01-01", "2030-01-02", "2030-01-03", "2030-01-04"} {
		seedTask(t, db, "task "+day, day, models.TaskPriorityLow, assignee, creator)
	}

	tasks, total, err := repo.List(TaskListQuery{SortBy: "dueDate", Order: "asc", Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, "task 2030-01-04", tasks[0].Title)
}

func TestTaskList_DescendingOrder(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	assignee := seedUser(t, db, "worker", false)
	creator := seedUser(t, db, "manager", false)

	seedTask(t, db, "b", "2030-01-01", models.TaskPriorityLow, assignee, creator)
	seedTask(t, db, "a", "2030-01-02", models.TaskPriorityLow, assignee, creator)

	tasks, _, err := repo.List(TaskListQuery{SortBy: "dueDate", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestTaskFindByID_ExcludesSoftDeleted(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	assignee := seedUser(t, db, "worker", false)
	creator := seedUser(t, db, "manager", false)
	task := seedTask(t, db, "doomed", "2030-01-01", models.TaskPriorityLow, assignee, creator)

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, db.Model(task).Update("is_deleted", true).Error)

	found, err = repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

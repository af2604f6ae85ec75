package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatusValues lists the accepted status values in declaration order.
var TaskStatusValues = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskPriorityValues lists the accepted priority values in declaration order.
var TaskPriorityValues = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

type Task struct {
	ID          string       `gorm:"primarykey;type:varchar(36)" json:"id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate     DateOnly     `gorm:"type:date;not null;index" json:"dueDate"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'low'" json:"priority"`
	AssignedTo  string       `gorm:"type:varchar(36);not null;index" json:"assignedTo"`
	CreatedBy   string       `gorm:"type:varchar(36);not null;index" json:"createdBy"`
	IsDeleted   bool         `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Relations
	Assignee User `gorm:"foreignKey:AssignedTo;references:ID" json:"-"`
	Creator  User `gorm:"foreignKey:CreatedBy;references:ID" json:"-"`
}

// ValidTaskStatus reports whether s is one of the accepted status values.
func ValidTaskStatus(s string) bool {
	for _, v := range TaskStatusValues {
		if string(v) == s {
			return true
		}
	}
	return false
}

// ValidTaskPriority reports whether p is one of the accepted priority values.
func ValidTaskPriority(p string) bool {
	for _, v := range TaskPriorityValues {
		if string(v) == p {
			return true
		}
	}
	return false
}

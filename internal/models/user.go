package models

import "time"

type User struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Username  string    `gorm:"type:varchar(100);not null;index" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	IsDeleted bool      `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	AssignedTasks []Task `gorm:"foreignKey:AssignedTo" json:"-"`
	CreatedTasks  []Task `gorm:"foreignKey:CreatedBy" json:"-"`
}

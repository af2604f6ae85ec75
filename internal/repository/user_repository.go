package repository

import (
	"errors"

	"github.com/castillotomupwork/task/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindAll retrieves every user that is not soft-deleted
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a non-deleted user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists changes to an existing user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UsernameTaken reports whether the username is used by any row other than
// excludeID. The query deliberately does not filter on is_deleted.
func (r *GormUserRepository) UsernameTaken(username, excludeID string) (bool, error) {
	return r.taken("username", username, excludeID)
}

// EmailTaken reports whether the email is used by any row other than excludeID.
func (r *GormUserRepository) EmailTaken(email, excludeID string) (bool, error) {
	return r.taken("email", email, excludeID)
}

func (r *GormUserRepository) taken(column, value, excludeID string) (bool, error) {
	query := r.db.Model(&models.User{}).Where(column+" = ?", value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/castillotomupwork/task/internal/models"
	"github.com/castillotomupwork/task/internal/repository"
	"github.com/castillotomupwork/task/internal/validators"
)

// ErrUserNotFound is returned when no non-deleted user matches the given ID.
var ErrUserNotFound = errors.New("user not found")

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create persists a new user from validated input, hashing the password
// before it reaches the store.
func (s *UserService) Create(input validators.UserInput) (*models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Username:  input.Username,
		Email:     input.Email,
		Password:  hash,
		IsDeleted: input.IsDeleted,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all non-deleted users.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// GetByID returns a non-deleted user or ErrUserNotFound.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a validated full update to an existing user. The password is
// re-hashed on every update because the original update surface always
// carries one.
func (s *UserService) Update(id string, input validators.UserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Username = input.Username
	user.Email = input.Email
	user.Password = hash
	user.IsDeleted = input.IsDeleted

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SoftDelete flips the IsDeleted flag and keeps the row. A second delete of
// the same user reports ErrUserNotFound because the lookup excludes rows
// already flagged.
func (s *UserService) SoftDelete(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsDeleted = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castillotomupwork/task/internal/dto"
	apierrors "github.com/castillotomupwork/task/internal/errors"
	"github.com/castillotomupwork/task/internal/middleware"
	"github.com/castillotomupwork/task/internal/repository"
	"github.com/castillotomupwork/task/internal/services"
	"github.com/castillotomupwork/task/internal/validators"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
	userRepo    repository.UserRepository
}

// NewUserHandler creates a new UserHandler. The repository is handed to the
// validators for their uniqueness lookups.
func NewUserHandler(userService *services.UserService, userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{
		userService: userService,
		userRepo:    userRepo,
	}
}

// CreateUser validates and creates a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	var req validators.StoreUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, fieldErrs, err := validators.ValidateStoreUser(h.userRepo, tr, req)
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}
	if len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	user, err := h.userService.Create(*input)
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(user))
}

// GetUsers returns all non-deleted users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	users, err := h.userService.List()
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(users))
}

// GetUser returns one user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	user, err := h.userService.GetByID(c.Param("id"))
	if errors.Is(err, services.ErrUserNotFound) {
		apierrors.NotFound(c, tr("user.notFound", nil))
		return
	}
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

// UpdateUser validates and applies a full update to an existing user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	tr := middleware.GetTranslator(c)
	id := c.Param("id")

	if _, err := h.userService.GetByID(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, tr("user.notFound", nil))
		} else {
			apierrors.Internal(c, tr("internalError", nil), err)
		}
		return
	}

	req := validators.UpdateUserRequest{ID: id}
	if err := c.ShouldBindJSON(&req.StoreUserRequest); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, fieldErrs, err := validators.ValidateUpdateUser(h.userRepo, tr, req)
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}
	if len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	user, err := h.userService.Update(id, *input)
	if errors.Is(err, services.ErrUserNotFound) {
		apierrors.NotFound(c, tr("user.notFound", nil))
		return
	}
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

// DeleteUser soft-deletes a user. The row stays in the store with its flag
// flipped; a second delete answers not-found.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	tr := middleware.GetTranslator(c)

	user, err := h.userService.SoftDelete(c.Param("id"))
	if errors.Is(err, services.ErrUserNotFound) {
		apierrors.NotFound(c, tr("user.notFound", nil))
		return
	}
	if err != nil {
		apierrors.Internal(c, tr("internalError", nil), err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

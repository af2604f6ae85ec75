package validators

import (
	"strings"
	"unicode"

	"github.com/castillotomupwork/task/internal/i18n"
	"github.com/castillotomupwork/task/internal/repository"
)

// StoreUserRequest is the raw body of a user create call. Pointers
// distinguish absent keys from empty values.
type StoreUserRequest struct {
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsDeleted *bool   `json:"isDeleted"`
}

// UpdateUserRequest is the raw body of a user update call plus the path id.
type UpdateUserRequest struct {
	ID string `json:"-"`
	StoreUserRequest
}

// UserInput is a validated user payload ready for the service layer.
// Email is trimmed and lowercased; Password is still plaintext.
type UserInput struct {
	Name      string
	Username  string
	Email     string
	Password  string
	IsDeleted bool
}

// ValidateStoreUser validates a user create request. The username and email
// uniqueness checks query the store live; there is no transaction around
// check-then-insert, so two concurrent creates can still race (the store
// arbitrates nothing here).
func ValidateStoreUser(users repository.UserRepository, tr i18n.Translator, req StoreUserRequest) (*UserInput, []FieldError, error) {
	return validateUser(users, tr, req, "")
}

// ValidateUpdateUser validates a user update request. Every field is
// validated unconditionally, and the uniqueness checks exclude the row being
// updated so a user may keep their own username and email.
func ValidateUpdateUser(users repository.UserRepository, tr i18n.Translator, req UpdateUserRequest) (*UserInput, []FieldError, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, []FieldError{{Field: "id", Message: tr("user.validation.id.required", nil)}}, nil
	}
	return validateUser(users, tr, req.StoreUserRequest, req.ID)
}

func validateUser(users repository.UserRepository, tr i18n.Translator, req StoreUserRequest, excludeID string) (*UserInput, []FieldError, error) {
	var errs []FieldError
	input := &UserInput{}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: tr("user.validation.name.required", nil)})
	} else {
		input.Name = strings.TrimSpace(*req.Name)
	}

	if req.Username == nil || strings.TrimSpace(*req.Username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: tr("user.validation.username.required", nil)})
	} else {
		username := strings.TrimSpace(*req.Username)
		taken, err := users.UsernameTaken(username, excludeID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs = append(errs, FieldError{
				Field:   "username",
				Message: tr("user.validation.username.duplicate", map[string]any{"Value": username}),
			})
		}
		input.Username = username
	}

	switch {
	case req.Email == nil:
		errs = append(errs, FieldError{Field: "email", Message: tr("user.validation.email.required", nil)})
	case !validEmail(strings.TrimSpace(*req.Email)):
		errs = append(errs, FieldError{Field: "email", Message: tr("user.validation.email.invalid", nil)})
	default:
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		taken, err := users.EmailTaken(email, excludeID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs = append(errs, FieldError{
				Field:   "email",
				Message: tr("user.validation.email.duplicate", map[string]any{"Value": email}),
			})
		}
		input.Email = email
	}

	switch {
	case req.Password == nil:
		errs = append(errs, FieldError{Field: "password", Message: tr("user.validation.password.required", nil)})
	case len(*req.Password) < 6:
		errs = append(errs, FieldError{Field: "password", Message: tr("user.validation.password.minLength", nil)})
	case !strongPassword(*req.Password):
		errs = append(errs, FieldError{Field: "password", Message: tr("user.validation.password.strength", nil)})
	default:
		input.Password = *req.Password
	}

	if req.IsDeleted != nil {
		input.IsDeleted = *req.IsDeleted
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return input, nil, nil
}

// strongPassword requires at least one lowercase letter, one uppercase
// letter, one digit and one character that is none of those.
func strongPassword(password string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

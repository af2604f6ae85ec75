// Package validators checks raw request input against the business rules and
// produces either a typed input value or an ordered list of field-scoped
// errors. A validator never stops at the first failing field: every field is
// checked and all errors are returned together. Checks that need the store
// (uniqueness, referenced-user existence) run through the repositories and
// complete before the verdict.
package validators

import "github.com/go-playground/validator/v10"

// FieldError is a validation failure scoped to one named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validate is used for syntax-level checks such as email format.
var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

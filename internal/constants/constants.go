package constants

// Pagination
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Context keys
const (
	ContextKeyTranslator = "translator"
)

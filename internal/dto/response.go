package dto

// Response is the envelope every endpoint answers with. Message carries
// either one localized string or a list of field-scoped validation errors.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Message any    `json:"message,omitempty"`
}

// OK wraps a successful payload.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKList wraps a successful page plus the total count under the list filter.
func OKList(data any, total int64) Response {
	return Response{Success: true, Data: data, Total: &total}
}

// Fail wraps a failure message or field-error list.
func Fail(message any) Response {
	return Response{Success: false, Message: message}
}

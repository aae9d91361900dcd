package response

import "net/http"

// Envelope is the uniform response wrapper returned by every endpoint.
// Internal error detail never enters an Envelope; callers log it and emit
// one of the generic constructors below.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Pagination carries offset-based list metadata.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Success wraps data in a success envelope.
func Success(data interface{}, message string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Paginated wraps a list result together with its pagination metadata.
func Paginated(data interface{}, message string, page, limit int, total int64) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}

// Error builds a failure envelope with an error kind code and a
// client-safe message.
func Error(code, message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Error:   code,
	}
}

// BadRequest maps validation failures to 400.
func BadRequest(message string) (int, Envelope) {
	return http.StatusBadRequest, Error("VALIDATION_ERROR", message)
}

// Unauthorized maps missing or invalid credentials to 401.
func Unauthorized(message string) (int, Envelope) {
	return http.StatusUnauthorized, Error("AUTHENTICATION_REQUIRED", message)
}

// TokenExpired maps an expired but well-signed credential to 401.
func TokenExpired() (int, Envelope) {
	return http.StatusUnauthorized, Error("TOKEN_EXPIRED", "Token has expired")
}

// Forbidden maps an authenticated caller without the required role to 403.
func Forbidden(message string) (int, Envelope) {
	return http.StatusForbidden, Error("AUTHORIZATION_DENIED", message)
}

// NotFound maps an absent identity or record to 404.
func NotFound(message string) (int, Envelope) {
	return http.StatusNotFound, Error("NOT_FOUND", message)
}

// Conflict maps duplicate unique fields to 409.
func Conflict(message string) (int, Envelope) {
	return http.StatusConflict, Error("CONFLICT", message)
}

// InternalError maps unexpected failures to 500. The message is fixed so
// internal detail cannot leak; log the underlying error server-side.
func InternalError() (int, Envelope) {
	return http.StatusInternalServerError, Error("INTERNAL_ERROR", "Something went wrong")
}

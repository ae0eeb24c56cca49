package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches by Code so that wrapped or contextualized errors still satisfy errors.Is.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION"
	CodeUnauthenticated    = "UNAUTHENTICATED"
)

var (
	// ErrDuplicateEmail - email is already registered (case-insensitive)
	ErrDuplicateEmail = &DomainError{
		Code:    CodeDuplicateEmail,
		Message: "email already registered",
	}

	// ErrInvalidCredentials - no user matches the email and password pair
	ErrInvalidCredentials = &DomainError{
		Code:    CodeInvalidCredentials,
		Message: "invalid email or password",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrValidation - input rejected before touching storage
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrUnauthenticated - operation needs a signed-in user
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "user not authenticated",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a VALIDATION error for a single field.
func NewValidationError(field, reason string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s: %s", field, reason),
	}
}

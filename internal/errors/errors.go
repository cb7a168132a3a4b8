package errors

import (
	stderrors "errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NotFoundError reports a lookup miss on one of the stores.
type NotFoundError struct {
	Message  string
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{
		Message:  fmt.Sprintf("%s %d not found", resource, id),
		Resource: resource,
		ID:       id,
	}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// InsufficientStockError is returned when a basket line asks for more units
// than the product has at validation time.
type InsufficientStockError struct {
	ProductID   int
	Description string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): requested %d, available %d",
		e.ProductID, e.Description, e.Requested, e.Available)
}

func NewInsufficientStockError(productID int, description string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   productID,
		Description: description,
		Requested:   requested,
		Available:   available,
	}
}

func IsInsufficientStockError(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if stderrors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}

const (
	CodeCredentialMissing = "CREDENTIAL_MISSING"
	CodeCredentialInvalid = "CREDENTIAL_INVALID"
	CodeInvalidLogin      = "INVALID_CREDENTIALS"
)

type CredentialError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CredentialError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CredentialError) Unwrap() error {
	return e.Cause
}

func NewCredentialMissingError() *CredentialError {
	return &CredentialError{
		Code:    CodeCredentialMissing,
		Message: "Token ausente",
	}
}

func NewCredentialInvalidError(cause error) *CredentialError {
	return &CredentialError{
		Code:    CodeCredentialInvalid,
		Message: "Token inválido",
		Cause:   cause,
	}
}

// NewInvalidLoginError is returned by login when no operator matches the
// submitted email and password.
func NewInvalidLoginError() *CredentialError {
	return &CredentialError{
		Code:    CodeInvalidLogin,
		Message: "Credenciais inválidas",
	}
}

func IsCredentialError(err error) (*CredentialError, bool) {
	var ce *CredentialError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// PersistenceError wraps a failed durable write. It is logged by callers and
// never returned to HTTP clients.
type PersistenceError struct {
	Collection string
	Cause      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %s: %v", e.Collection, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

func NewPersistenceError(collection string, cause error) *PersistenceError {
	return &PersistenceError{
		Collection: collection,
		Cause:      cause,
	}
}

func IsPersistenceError(err error) (*PersistenceError, bool) {
	var pe *PersistenceError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

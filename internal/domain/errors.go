package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrForbidden        = errors.New("forbidden")
	ErrUserBlocked      = errors.New("user is blocked")
	ErrInvalidLanguage  = errors.New("unsupported language")

	ErrOutOfStock      = errors.New("requested quantity is not available")
	ErrMixedSellers    = errors.New("order items belong to different sellers")
	ErrOwnProduct      = errors.New("cannot order own product")
	ErrProductInactive = errors.New("product is not active")

	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrAlreadyConfirmed        = errors.New("delivery already confirmed")
	ErrInvalidConfirmation     = errors.New("invalid delivery confirmation")
	ErrShopNotVerified         = errors.New("pickup shop is not verified")
	ErrEscrowSettled           = errors.New("escrow already settled")
)

// ValidationError ошибка бизнес-валидации входных данных с указанием поля.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

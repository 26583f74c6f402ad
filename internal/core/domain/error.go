package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")
	ErrValidation = errors.New("validation error")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotApproved   = errors.New("cannot order unapproved products")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotOrderParty        = errors.New("not authorized to view this order")
	ErrNotOrderSeller       = errors.New("you can only update your own orders")
	ErrNotOrderBuyer        = errors.New("you can only cancel your own orders")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrUnknownOrderStatus   = errors.New("invalid current order status")
	ErrOrderNotCancellable  = errors.New("order cannot be cancelled at this stage")
	ErrOrderConcurrentWrite = errors.New("order was modified concurrently")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("notification belongs to another user")
	ErrReviewNotFound       = errors.New("review not found")
	ErrNotReviewAuthor      = errors.New("you can only modify your own reviews")
	ErrAlreadyReviewed      = errors.New("you have already reviewed this product")
	ErrProductNotReviewable = errors.New("cannot review unapproved products")
	ErrSavedItemNotFound    = errors.New("saved item not found")
	ErrNotSavedItemOwner    = errors.New("you can only modify your own saved items")
	ErrAlreadySaved         = errors.New("product is already in your saved items")
	ErrProductNotSaveable   = errors.New("cannot save unapproved products")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// TransitionError is returned when the requested status is not reachable from the current one.
type TransitionError struct {
	From    OrderStatus
	To      OrderStatus
	Allowed []OrderStatus
}

func (e *TransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, string(s))
	}
	valid := strings.Join(allowed, ", ")
	if valid == "" {
		valid = "none"
	}
	return fmt.Sprintf("cannot change status from %s to %s. Valid transitions are: %s", e.From, e.To, valid)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

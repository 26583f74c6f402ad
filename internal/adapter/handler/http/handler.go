package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusTable is matched top to bottom with errors.Is.
var errorStatusTable = []errorStatus{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrNoUpdatedData, http.StatusBadRequest},

	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},

	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotOrderParty, http.StatusForbidden},
	{domain.ErrNotOrderSeller, http.StatusForbidden},
	{domain.ErrNotOrderBuyer, http.StatusForbidden},
	{domain.ErrNotNotificationOwner, http.StatusForbidden},
	{domain.ErrNotReviewAuthor, http.StatusForbidden},
	{domain.ErrNotSavedItemOwner, http.StatusForbidden},

	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrNotificationNotFound, http.StatusNotFound},
	{domain.ErrReviewNotFound, http.StatusNotFound},
	{domain.ErrSavedItemNotFound, http.StatusNotFound},

	{domain.ErrProductNotApproved, http.StatusBadRequest},
	{domain.ErrInsufficientStock, http.StatusBadRequest},
	{domain.ErrInvalidTransition, http.StatusBadRequest},
	{domain.ErrUnknownOrderStatus, http.StatusBadRequest},
	{domain.ErrOrderNotCancellable, http.StatusBadRequest},
	{domain.ErrProductNotReviewable, http.StatusBadRequest},
	{domain.ErrAlreadyReviewed, http.StatusBadRequest},
	{domain.ErrProductNotSaveable, http.StatusBadRequest},
	{domain.ErrAlreadySaved, http.StatusBadRequest},

	{domain.ErrConflictingData, http.StatusConflict},
	{domain.ErrOrderConcurrentWrite, http.StatusConflict},

	{domain.ErrTokenCreation, http.StatusInternalServerError},
	{domain.ErrInternal, http.StatusInternalServerError},
}

func errorStatusCode(err error) (int, bool) {
	for _, es := range errorStatusTable {
		if errors.Is(err, es.err) {
			return es.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

// UnmarshalJSON accepts a JSON number or numeric string and parses its digits directly.
func (j *jsonDecimal) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	d, err := decimal.Parse(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + raw, Type: reflect.TypeOf(*j)}
	}
	*j = jsonDecimal(d)
	return nil
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message"`
	Errors           []fieldError `json:"errors,omitempty"`
	ValidTransitions []string     `json:"validTransitions,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func newErrorResponse(err error) (int, errorResponse) {
	status, _ := errorStatusCode(err)
	resp := errorResponse{Message: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Message = domain.ErrInternal.Error()
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Errors = []fieldError{{Field: ve.Field, Message: ve.Message}}
	}
	var te *domain.TransitionError
	if errors.As(err, &te) {
		resp.ValidTransitions = make([]string, 0, len(te.Allowed))
		for _, s := range te.Allowed {
			resp.ValidTransitions = append(resp.ValidTransitions, string(s))
		}
	}
	return status, resp
}

// abort writes the error response and stops the handler chain. Used by middleware.
func abort(ctx *gin.Context, err error) {
	status, resp := newErrorResponse(err)
	ctx.AbortWithStatusJSON(status, resp)
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError reports a request that failed binding, with one entry per rejected field.
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	resp := errorResponse{Message: "Validation error"}

	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, fieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
		}
		resp.Message = resp.Errors[0].Message
	case errors.As(err, &typeErr):
		resp.Errors = []fieldError{{Field: typeErr.Field, Message: "Invalid value type"}}
	case errors.As(err, &syntaxErr):
		resp.Message = "Malformed JSON body"
	case errors.As(err, &numErr):
		resp.Message = "Invalid number in query"
	default:
		resp.Message = err.Error()
	}

	ctx.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// handleError maps a service error to its status code; unmapped errors are logged and hidden.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	if _, ok := errorStatusCode(err); !ok {
		h.logger.Error("error processing request", zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	status, resp := newErrorResponse(err)
	ctx.JSON(status, resp)
}

func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, message string, data any, status int) {
	ctx.JSON(status, successResponse{Success: true, Message: message, Data: data})
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, "", data, http.StatusOK)
}

// fieldPath drops the request struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	name := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot exceed %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email", name)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date", name)
	}
	return fmt.Sprintf("%s is invalid", name)
}

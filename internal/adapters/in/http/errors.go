package http

import (
	"errors"
	"net/http"

	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/errs"
)

// statusFor maps use case failures to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrProductNotFound),
		errors.Is(err, queries.ErrOrderNotFound),
		errors.Is(err, queries.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrAuthorizationFailed):
		return http.StatusForbidden
	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrTransactionAborted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, commands.ErrStatusNotAllowed),
		errors.Is(err, commands.ErrOrderNotEditable),
		errors.Is(err, commands.ErrProductMissing),
		errors.Is(err, commands.ErrInsufficientStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the text shown to the operator. Internal failures are not
// described beyond "try again".
func userMessage(err error) string {
	switch statusFor(err) {
	case http.StatusInternalServerError:
		return "Something went wrong, please try again."
	case http.StatusConflict:
		return "The store was busy, please try again."
	default:
		return err.Error()
	}
}

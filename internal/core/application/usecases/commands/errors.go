package commands

import (
	"errors"

	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/core/domain/model/product"
	"penguinadmin/internal/core/domain/services"
	"penguinadmin/internal/core/ports"
)

// Failures reported by the fulfillment use cases. Each leaves the store unchanged.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")

	// ErrAuthorizationFailed is returned by the transport when the
	// anti-forgery token is rejected; no store is touched.
	ErrAuthorizationFailed = errors.New("authorization failed")

	ErrStatusNotAllowed = errors.New("status not allowed")

	ErrOrderNotEditable = order.ErrOrderNotEditable

	ErrProductMissing     = services.ErrProductMissing
	ErrInsufficientStock  = product.ErrInsufficientStock
	ErrTransactionAborted = ports.ErrTransactionAborted
)

type (
	ProductMissingError    = services.ProductMissingError
	InsufficientStockError = product.InsufficientStockError
)

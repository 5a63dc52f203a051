package order

import "storefront-be/internal/apperr"

var (
	ErrOrderNotFound = apperr.NotFound("order not found")
	ErrAccessDenied  = apperr.Forbidden("access denied")
	ErrNotPending    = apperr.InvalidState("can only cancel pending orders")
	ErrNoItems       = apperr.InvalidInput("order must contain at least one item")
)

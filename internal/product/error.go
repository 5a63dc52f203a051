package product

import "storefront-be/internal/apperr"

var (
	ErrProductNotFound   = apperr.NotFound("product not found")
	ErrInsufficientStock = apperr.InsufficientStock("insufficient stock")
)

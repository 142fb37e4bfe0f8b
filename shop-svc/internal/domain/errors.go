package domain

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrOutOfStock          = errors.New("reward out of stock")
	ErrPersistenceConflict = errors.New("concurrent update conflict, retry the operation")
	ErrUnauthenticated     = errors.New("sign in required")
	ErrForbidden           = errors.New("admin privileges required")
	ErrProductInUse        = errors.New("product is referenced by existing orders")
)

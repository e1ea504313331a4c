package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrUnknownProductKind  = errors.New("unknown product kind")

	// Cantidades: las operaciones de stock exigen cantidades positivas,
	// el cálculo de precio sólo rechaza cantidades negativas.
	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrNegativeQuantity = errors.New("quantity must be greater than or equal to 0")

	ErrDuplicateName     = errors.New("product with same name already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
)

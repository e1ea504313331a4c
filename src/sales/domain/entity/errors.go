package entity

import "errors"

var (
	ErrNilSale         = errors.New("sale cannot be nil")
	ErrSaleNotPending  = errors.New("operation not allowed: sale is not in PENDING state")
	ErrSaleNotPaid     = errors.New("sale must be finalized before processing")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrSaleNotFound    = errors.New("sale not found")
)

package ordercontroller

import "fmt"

// InsufficientStockError rejects an entire order when any requested line item
// exceeds the available stock.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// ProductNotFoundError surfaces as a validation error on the create-order
// request rather than a 404, since the missing record is inside the payload.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

package billing

import "errors"

// Validation failures returned by the cart and bill builder. These are local,
// typed results; callers surface them as form messages and never retry.
var (
	ErrEmptyCart           = errors.New("cart is empty, add items before checkout")
	ErrMissingCustomerInfo = errors.New("customer name and contact are required")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidPrice        = errors.New("unit price cannot be negative")
)

// IsValidation reports whether err is one of the input errors above, as
// opposed to a storage failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrMissingCustomerInfo) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice)
}

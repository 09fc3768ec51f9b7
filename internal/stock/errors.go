package stock

import "errors"

var (
	// ErrInvalidQuantity: zero/negative quantity, or != 1 for serialized
	// target kinds.
	ErrInvalidQuantity = errors.New("Quantity must be a positive whole number")
	// ErrInvalidStockIdentity: empty hardware type or no matching pool.
	ErrInvalidStockIdentity = errors.New("No stock found for the given identity")
	// ErrInsufficientStock: requested quantity exceeds what is available.
	// Checked optimistically at validation time and again under the row lock.
	ErrInsufficientStock = errors.New("Insufficient stock")
	// ErrMissingFormFields: a target kind was selected without its sub-form.
	ErrMissingFormFields = errors.New("Target form fields are missing")
	// ErrUnknownMovementKind: the movement kind is outside the recognized
	// set after synonym normalization.
	ErrUnknownMovementKind = errors.New("Unknown movement kind")
	// ErrUnknownTargetKind: the allocation target kind is not one of
	// envanter/lisans/yazici.
	ErrUnknownTargetKind = errors.New("Unknown allocation target kind")
)

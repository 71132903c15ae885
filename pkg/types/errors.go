package types

import "errors"

// Standard errors returned by the storage layer. Callers compare with
// errors.Is; the store wraps lower-level failures around these sentinels.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateTag      = errors.New("asset tag already exists")
	ErrInvalidName       = errors.New("name must not be empty")
	ErrInvalidStatus     = errors.New("unknown asset status")
	ErrNegativeCost      = errors.New("cost must not be negative")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrNegativeStock     = errors.New("stock must not be negative")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

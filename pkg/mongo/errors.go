package mongo

import "errors"

// Sentinel errors returned by the collection helpers so handlers can map
// storage failures onto the client-error / not-found / server-error split.
var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrItemNotFound = errors.New("item not found in cart")
	ErrEmptyCart    = errors.New("cart is empty")
)

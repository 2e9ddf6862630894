package store

import "errors"

// Predefined errors returned by store, basket and client operations.
// All failures are synchronous validation errors; none of them is retryable
// without the caller first re-checking state.
var (
	// ErrInvalidArgument indicates a malformed input: an empty item name,
	// a negative price or balance, a non-positive amount, an unknown client
	// tier, a nil item or client, or an unparseable purchase date.
	ErrInvalidArgument = errors.New("store: invalid argument")
	// ErrItemNotFound indicates that a basket line names an item that is
	// absent from the store inventory.
	ErrItemNotFound = errors.New("store: item not found in store")
	// ErrInsufficientStock indicates that a basket line asks for more of an
	// item than the store inventory holds.
	ErrInsufficientStock = errors.New("store: not enough of item in store")
	// ErrInsufficientFunds indicates that the post-discount cost of a
	// purchase exceeds the client's balance.
	ErrInsufficientFunds = errors.New("store: not enough money to complete the purchase")
	// ErrClientNotRegistered indicates a purchase attempt by a client that
	// was never added to the store.
	ErrClientNotRegistered = errors.New("store: client has not been registered")
	// ErrNotInBasket indicates an attempt to remove an item the basket does
	// not currently hold.
	ErrNotInBasket = errors.New("store: item not in basket")
	// ErrRemoveExceedsHeld indicates an attempt to remove more of an item
	// than the basket currently holds.
	ErrRemoveExceedsHeld = errors.New("store: cannot remove more than is in the basket")
)

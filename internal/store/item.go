// Package store implements the online store domain: items, per-client
// baskets, client accounts and the store itself with its inventory,
// registered clients and purchase log. The package is the in-memory
// storage layer of the application; callers that use it from multiple
// goroutines must serialize access themselves (the app package does so
// with a single lock around every store-touching operation).
package store

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is an immutable (name, price) value describing a product sold by
// the store. Quantities are never part of an item: a basket pairs an item
// with a basket-local quantity, and the store inventory counts items by
// name.
type Item struct {
	name  string
	price decimal.Decimal
}

// NewItem creates an item. The name must be non-empty and the price must
// not be negative.
func NewItem(name string, price decimal.Decimal) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name has to be a non-empty string", ErrInvalidArgument)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price can't be negative", ErrInvalidArgument)
	}
	return &Item{name: name, price: price}, nil
}

// Name returns the item name.
func (item *Item) Name() string {
	return item.name
}

// Price returns the item price.
func (item *Item) Price() decimal.Decimal {
	return item.price
}

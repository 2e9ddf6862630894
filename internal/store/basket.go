package store

import "fmt"

// Entry is one basket line: an item together with the quantity of it held
// in the basket. Quantity is always positive while the entry exists; an
// entry that reaches zero is removed from the basket.
type Entry struct {
	Item     *Item
	Quantity int
}

// Basket is an ordered collection of distinct items staged for purchase.
// Entries are keyed by item name, so the same name never appears twice;
// adding an already-held item accumulates its quantity instead. Every
// client owns exactly one basket, created empty with the client and
// cleared (not replaced) after a successful purchase.
type Basket struct {
	entries []Entry
}

// NewBasket creates an empty basket.
func NewBasket() *Basket {
	return &Basket{}
}

// Add puts amount units of item into the basket. The amount must be a
// positive integer and the item must not be nil. If the basket already
// holds the item, its quantity is incremented; otherwise the item is
// appended to the end of the basket.
func (basket *Basket) Add(item *Item, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d is not a valid amount", ErrInvalidArgument, amount)
	}
	if item == nil {
		return fmt.Errorf("%w: this is not a valid item", ErrInvalidArgument)
	}

	for i := range basket.entries {
		if basket.entries[i].Item.name == item.name {
			basket.entries[i].Quantity += amount
			return nil
		}
	}

	basket.entries = append(basket.entries, Entry{Item: item, Quantity: amount})
	return nil
}

// Remove takes amount units of item out of the basket. The amount must not
// be negative (removing zero is a no-op), the item must not be nil and
// must currently be in the basket, and no more can be removed than is
// held. An entry whose quantity reaches exactly zero is dropped from the
// basket, preserving the relative order of the remaining entries.
func (basket *Basket) Remove(item *Item, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d is not a valid amount", ErrInvalidArgument, amount)
	}
	if item == nil {
		return fmt.Errorf("%w: this is not a valid item", ErrInvalidArgument)
	}

	for i := range basket.entries {
		if basket.entries[i].Item.name != item.name {
			continue
		}
		if amount > basket.entries[i].Quantity {
			return fmt.Errorf("%w: held %d, removing %d", ErrRemoveExceedsHeld, basket.entries[i].Quantity, amount)
		}
		basket.entries[i].Quantity -= amount
		if basket.entries[i].Quantity == 0 {
			basket.entries = append(basket.entries[:i], basket.entries[i+1:]...)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrNotInBasket, item.name)
}

// Entries returns a copy of the basket lines in basket order.
func (basket *Basket) Entries() []Entry {
	entries := make([]Entry, len(basket.entries))
	copy(entries, basket.entries)
	return entries
}

// Quantity returns the quantity of the named item held in the basket, or
// zero if the basket does not hold it.
func (basket *Basket) Quantity(name string) int {
	for _, entry := range basket.entries {
		if entry.Item.name == name {
			return entry.Quantity
		}
	}
	return 0
}

// Len returns the number of distinct items in the basket.
func (basket *Basket) Len() int {
	return len(basket.entries)
}

// Clear empties the basket.
func (basket *Basket) Clear() {
	basket.entries = basket.entries[:0]
}

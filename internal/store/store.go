package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day.month.year format used for purchase dates, e.g.
// "01.06.2023".
const DateLayout = "02.01.2006"

// goldDiscount is the multiplier applied to the purchase cost of a gold
// client.
var goldDiscount = decimal.NewFromFloat(0.9)

// LogEntry is one completed purchase as recorded in the store-wide log:
// the purchasing client, the purchase date and the "name x<quantity>"
// lines of the transaction.
type LogEntry struct {
	ClientID string   `json:"clientId"`
	Date     string   `json:"date"`
	Lines    []string `json:"lines"`
}

// Store holds the inventory (item name to available quantity, entries
// dropped at zero), the price catalog, the registered clients and the
// append-only purchase log, oldest purchase first.
type Store struct {
	inventory map[string]int
	catalog   map[string]*Item
	clients   []*Client
	purchases []LogEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		inventory: make(map[string]int),
		catalog:   make(map[string]*Item),
	}
}

// AddItem stocks amount units of item. The amount must be a positive
// integer and the item must not be nil. Restocking an already-known item
// accumulates its quantity.
func (store *Store) AddItem(item *Item, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d is not a valid amount", ErrInvalidArgument, amount)
	}
	if item == nil {
		return fmt.Errorf("%w: this is not a valid item", ErrInvalidArgument)
	}

	store.inventory[item.name] += amount
	store.catalog[item.name] = item
	return nil
}

// AddClient registers a client with the store. Only registered clients may
// purchase. Registration does not deduplicate.
func (store *Store) AddClient(client *Client) error {
	if client == nil {
		return fmt.Errorf("%w: this is not a valid client", ErrInvalidArgument)
	}
	store.clients = append(store.clients, client)
	return nil
}

// Purchase executes the client's basket against the store on the given
// date ("" means today, resolved at call time).
//
// Basket lines are processed in basket order: each line is checked against
// inventory (ErrItemNotFound if the item is not stocked at all,
// ErrInsufficientStock if the quantity exceeds what is available), its
// cost is accumulated and the inventory is decremented immediately. Gold
// clients then get a 10% discount, and only after that is the balance
// checked.
//
// Contract: inventory is decremented line by line BEFORE the balance
// check, so a purchase rejected with ErrInsufficientFunds — or with a
// stock failure on a later line — leaves the inventory reduced by the
// lines already processed. Callers that need the stock back must restock
// explicitly.
//
// On success the balance is debited (rounded to 2 decimal places), the
// transaction is appended to the client history (re-sorted newest date
// first) and to the store purchase log, and the basket is cleared.
func (store *Store) Purchase(client *Client, date string) error {
	if client == nil {
		return fmt.Errorf("%w: this is not a valid client", ErrInvalidArgument)
	}
	if !store.registered(client) {
		return fmt.Errorf("%w: %s", ErrClientNotRegistered, client.id)
	}

	if date == "" {
		date = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q is not a valid date", ErrInvalidArgument, date)
	}

	cost := decimal.Zero
	var lines []string
	for _, entry := range client.basket.entries {
		available, ok := store.inventory[entry.Item.name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrItemNotFound, entry.Item.name)
		}
		if entry.Quantity > available {
			return fmt.Errorf("%w: %s", ErrInsufficientStock, entry.Item.name)
		}

		lines = append(lines, fmt.Sprintf("%s x%d", entry.Item.name, entry.Quantity))
		cost = cost.Add(entry.Item.price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		store.inventory[entry.Item.name] = available - entry.Quantity
		if store.inventory[entry.Item.name] == 0 {
			delete(store.inventory, entry.Item.name)
		}
	}

	if client.tier == TierGold {
		cost = cost.Mul(goldDiscount)
	}

	if cost.GreaterThan(client.balance) {
		return fmt.Errorf("%w: cost %s exceeds balance %s", ErrInsufficientFunds, cost, client.balance)
	}
	client.balance = client.balance.Sub(cost).Round(2)

	client.history = append(client.history, Receipt{Date: date, Lines: lines})
	store.purchases = append(store.purchases, LogEntry{ClientID: client.id, Date: date, Lines: lines})

	// Dates were validated on insert, so the parses here cannot fail.
	sort.SliceStable(client.history, func(i, j int) bool {
		di, _ := time.Parse(DateLayout, client.history[i].Date)
		dj, _ := time.Parse(DateLayout, client.history[j].Date)
		return di.After(dj)
	})

	client.basket.Clear()
	return nil
}

// registered reports whether a client with the same ID has been added to
// the store.
func (store *Store) registered(client *Client) bool {
	for _, c := range store.clients {
		if c.id == client.id {
			return true
		}
	}
	return false
}

// Item returns the cataloged item with the given name. The catalog
// remembers every item ever stocked, even after its inventory sells out.
func (store *Store) Item(name string) (*Item, bool) {
	item, ok := store.catalog[name]
	return item, ok
}

// ClientByID returns the registered client with the given ID.
func (store *Store) ClientByID(id string) (*Client, bool) {
	for _, client := range store.clients {
		if client.id == id {
			return client, true
		}
	}
	return nil, false
}

// Inventory returns a copy of the inventory mapping.
func (store *Store) Inventory() map[string]int {
	inventory := make(map[string]int, len(store.inventory))
	for name, amount := range store.inventory {
		inventory[name] = amount
	}
	return inventory
}

// Clients returns a copy of the registered client list in registration
// order.
func (store *Store) Clients() []*Client {
	clients := make([]*Client, len(store.clients))
	copy(clients, store.clients)
	return clients
}

// Purchases returns a copy of the store-wide purchase log, oldest first.
func (store *Store) Purchases() []LogEntry {
	purchases := make([]LogEntry, len(store.purchases))
	for i, entry := range store.purchases {
		lines := make([]string, len(entry.Lines))
		copy(lines, entry.Lines)
		purchases[i] = LogEntry{ClientID: entry.ClientID, Date: entry.Date, Lines: lines}
	}
	return purchases
}

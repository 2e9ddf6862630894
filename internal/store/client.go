package store

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientTier is the membership tier of a client. Gold clients receive a
// 10% discount on every purchase.
type ClientTier string

// Valid client tiers.
const (
	TierGold    ClientTier = "gold"
	TierRegular ClientTier = "regular"
)

// Receipt is one completed purchase as recorded in a client's history:
// the purchase date and the "name x<quantity>" lines of the transaction.
type Receipt struct {
	Date  string   `json:"date"`
	Lines []string `json:"lines"`
}

// Client is a store customer: an opaque identifier, a fixed membership
// tier, an account balance that only purchases may change, an owned
// basket and a purchase history kept newest-date-first.
type Client struct {
	id      string
	tier    ClientTier
	balance decimal.Decimal
	basket  *Basket
	history []Receipt
}

// NewClient creates a client. The tier must be gold or regular and the
// balance must not be negative.
func NewClient(id string, tier ClientTier, balance decimal.Decimal) (*Client, error) {
	if tier != TierGold && tier != TierRegular {
		return nil, fmt.Errorf("%w: %q is not a valid type of client", ErrInvalidArgument, tier)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance can't be negative", ErrInvalidArgument)
	}
	return &Client{id: id, tier: tier, balance: balance, basket: NewBasket()}, nil
}

// ID returns the client identifier.
func (client *Client) ID() string {
	return client.id
}

// Tier returns the client membership tier.
func (client *Client) Tier() ClientTier {
	return client.tier
}

// Balance returns the current account balance.
func (client *Client) Balance() decimal.Decimal {
	return client.balance
}

// Basket returns the client's basket.
func (client *Client) Basket() *Basket {
	return client.basket
}

// History returns a copy of the client's purchase history, newest date
// first.
func (client *Client) History() []Receipt {
	history := make([]Receipt, len(client.history))
	for i, receipt := range client.history {
		lines := make([]string, len(receipt.Lines))
		copy(lines, receipt.Lines)
		history[i] = Receipt{Date: receipt.Date, Lines: lines}
	}
	return history
}

// Package models defines the data structures used throughout the application.
// It includes request and response payloads for stocking items, registering
// clients, basket mutation, purchases and store information.
package models

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// AddItemRequest represents the payload for stocking an item.
// It contains the item name, its unit price and the amount to stock.
type AddItemRequest struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Amount int     `json:"amount"`
}

// RegisterClientRequest represents the payload for registering a client.
// The ID is optional; one is generated when it is left empty.
type RegisterClientRequest struct {
	ID      string  `json:"id,omitempty"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// ClientResponse represents a registered client as returned by the API.
type ClientResponse struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// BasketRequest represents the payload for adding an item to a client's
// basket or removing one from it.
type BasketRequest struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// PurchaseRequest represents the payload for executing a purchase.
// The date is optional; the current date is used when it is left empty.
type PurchaseRequest struct {
	Date string `json:"date,omitempty"`
}

// PurchaseResponse represents the outcome of a successful purchase:
// the recorded date, the transaction lines and the remaining balance.
type PurchaseResponse struct {
	Date    string   `json:"date"`
	Lines   []string `json:"lines"`
	Balance float64  `json:"balance"`
}

// ReceiptInfo represents one entry of a client's purchase history.
type ReceiptInfo struct {
	Date  string   `json:"date"`
	Lines []string `json:"lines"`
}

// PurchaseInfo represents one entry of the store-wide purchase log.
type PurchaseInfo struct {
	ClientID string   `json:"clientId"`
	Date     string   `json:"date"`
	Lines    []string `json:"lines"`
}

// InfoResponse represents the response payload for the /api/info endpoint.
// It contains the current inventory, the registered clients and the
// store-wide purchase log.
type InfoResponse struct {
	Storage   map[string]int   `json:"storage"`
	Clients   []ClientResponse `json:"clients"`
	Purchases []PurchaseInfo   `json:"purchases"`
}

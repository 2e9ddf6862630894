// Package app provides the core business logic for the online store
// application. It resolves API-level identifiers (client IDs, item names)
// to domain objects, drives the store package for stocking, registration,
// basket mutation and purchases, and serializes every store-touching
// operation behind a single lock so the single-threaded domain code can be
// served concurrently.
package app

import (
	"errors"
	"sync"

	"online_store/internal/models"
	"online_store/internal/pkg/logger"
	"online_store/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Predefined errors for missing required parameters in requests.
var (
	// ErrMissingItemFields indicates that the item name or amount is not provided.
	ErrMissingItemFields = errors.New("app: missing item name or amount")
	// ErrMissingClientType indicates that the client type is not provided.
	ErrMissingClientType = errors.New("app: missing client type")
	// ErrUnknownClient indicates that no client with the requested ID is registered.
	ErrUnknownClient = errors.New("app: unknown client")
	// ErrUnknownItem indicates that no item with the requested name has ever been stocked.
	ErrUnknownItem = errors.New("app: unknown item")
)

// Storefront defines the store operations the application layer depends on.
// It is implemented by *store.Store.
//
//go:generate mockgen -source=app.go -destination=mocks/mock_storefront.go -package=mocks
type Storefront interface {
	// Stocking and registration.
	AddItem(item *store.Item, amount int) error
	AddClient(client *store.Client) error

	// Lookups by API-level key.
	Item(name string) (*store.Item, bool)
	ClientByID(id string) (*store.Client, bool)

	// The purchase transaction.
	Purchase(client *store.Client, date string) error

	// Store state accessors.
	Inventory() map[string]int
	Clients() []*store.Client
	Purchases() []store.LogEntry
}

// App encapsulates the application logic and dependencies required to
// process requests. It guards the storefront with a mutex: the whole of
// every operation, purchase included, is one critical section.
type App struct {
	mu    sync.Mutex
	store Storefront     // In-memory store acting as the storage layer.
	log   *logger.Logger // Logger for logging application events and errors.
}

// NewApp creates and returns a new instance of App with the provided storefront and logger dependencies.
func NewApp(store Storefront, log *logger.Logger) *App {
	return &App{store: store, log: log}
}

// ProcessAddItem stocks an item. The first stocking of a name fixes the
// item's price; later stockings of the same name restock it and ignore
// the price field.
func (app *App) ProcessAddItem(req models.AddItemRequest) error {
	if req.Name == "" || req.Amount == 0 {
		return ErrMissingItemFields
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	item, ok := app.store.Item(req.Name)
	if !ok {
		var err error
		item, err = store.NewItem(req.Name, decimal.NewFromFloat(req.Price))
		if err != nil {
			return err
		}
	}

	return app.store.AddItem(item, req.Amount)
}

// ProcessRegisterClient registers a client with the store, generating an
// ID when the request does not carry one, and returns the registered
// client.
func (app *App) ProcessRegisterClient(req models.RegisterClientRequest) (*models.ClientResponse, error) {
	if req.Type == "" {
		return nil, ErrMissingClientType
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	client, err := store.NewClient(id, store.ClientTier(req.Type), decimal.NewFromFloat(req.Balance))
	if err != nil {
		return nil, err
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if err = app.store.AddClient(client); err != nil {
		return nil, err
	}

	return clientResponse(client), nil
}

// ProcessBasketAdd adds an amount of a cataloged item to a client's basket.
func (app *App) ProcessBasketAdd(clientID string, req models.BasketRequest) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	client, ok := app.store.ClientByID(clientID)
	if !ok {
		return ErrUnknownClient
	}

	item, ok := app.store.Item(req.Item)
	if !ok {
		return ErrUnknownItem
	}

	return client.Basket().Add(item, req.Amount)
}

// ProcessBasketRemove removes an amount of an item from a client's basket.
func (app *App) ProcessBasketRemove(clientID string, req models.BasketRequest) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	client, ok := app.store.ClientByID(clientID)
	if !ok {
		return ErrUnknownClient
	}

	item, ok := app.store.Item(req.Item)
	if !ok {
		return ErrUnknownItem
	}

	return client.Basket().Remove(item, req.Amount)
}

// ProcessPurchase executes a client's basket against the store and returns
// the recorded transaction together with the remaining balance.
func (app *App) ProcessPurchase(clientID string, req models.PurchaseRequest) (*models.PurchaseResponse, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	client, ok := app.store.ClientByID(clientID)
	if !ok {
		return nil, ErrUnknownClient
	}

	if err := app.store.Purchase(client, req.Date); err != nil {
		return nil, err
	}

	purchases := app.store.Purchases()
	recorded := purchases[len(purchases)-1]

	return &models.PurchaseResponse{
		Date:    recorded.Date,
		Lines:   recorded.Lines,
		Balance: client.Balance().InexactFloat64(),
	}, nil
}

// ProcessHistory returns a client's purchase history, newest date first.
func (app *App) ProcessHistory(clientID string) ([]models.ReceiptInfo, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	client, ok := app.store.ClientByID(clientID)
	if !ok {
		return nil, ErrUnknownClient
	}

	receipts := client.History()
	history := make([]models.ReceiptInfo, 0, len(receipts))
	for _, receipt := range receipts {
		history = append(history, models.ReceiptInfo{Date: receipt.Date, Lines: receipt.Lines})
	}

	return history, nil
}

// ProcessInfo aggregates the current store state: inventory, registered
// clients and the store-wide purchase log.
func (app *App) ProcessInfo() (*models.InfoResponse, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	clients := app.store.Clients()
	clientInfo := make([]models.ClientResponse, 0, len(clients))
	for _, client := range clients {
		clientInfo = append(clientInfo, *clientResponse(client))
	}

	purchases := app.store.Purchases()
	purchaseInfo := make([]models.PurchaseInfo, 0, len(purchases))
	for _, entry := range purchases {
		purchaseInfo = append(purchaseInfo, models.PurchaseInfo{
			ClientID: entry.ClientID,
			Date:     entry.Date,
			Lines:    entry.Lines,
		})
	}

	return &models.InfoResponse{
		Storage:   app.store.Inventory(),
		Clients:   clientInfo,
		Purchases: purchaseInfo,
	}, nil
}

func clientResponse(client *store.Client) *models.ClientResponse {
	return &models.ClientResponse{
		ID:      client.ID(),
		Type:    string(client.Tier()),
		Balance: client.Balance().InexactFloat64(),
	}
}

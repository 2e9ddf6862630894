// Package service contains HTTP handler implementations for the online store API endpoints.
// It orchestrates request parsing, calls the underlying business logic in the app package,
// maps domain errors to HTTP status codes, and writes appropriate HTTP responses.
package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"online_store/internal/app"
	"online_store/internal/models"
	"online_store/internal/pkg/logger"
	"online_store/internal/store"

	"github.com/go-chi/chi/v5"
)

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// addItemHandler handles requests to stock an item.
// It reads the request body, unmarshals it into an AddItemRequest,
// and invokes the stocking logic.
func (handlers *handlers) addItemHandler(res http.ResponseWriter, req *http.Request) {
	var addItemRequest models.AddItemRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &addItemRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = handlers.app.ProcessAddItem(addItemRequest); err != nil {
		if errors.Is(err, app.ErrMissingItemFields) {
			writeErrorResponse(res, "missing item name or amount", http.StatusBadRequest)
			return
		}
		writeDomainError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// registerClientHandler handles requests to register a client.
// It validates the request body, calls the registration logic,
// and returns the registered client (with its possibly generated ID) in JSON format.
func (handlers *handlers) registerClientHandler(res http.ResponseWriter, req *http.Request) {
	var registerRequest models.RegisterClientRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &registerRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := handlers.app.ProcessRegisterClient(registerRequest)
	if err != nil {
		if errors.Is(err, app.ErrMissingClientType) {
			writeErrorResponse(res, "missing client type", http.StatusBadRequest)
			return
		}
		writeDomainError(res, err)
		return
	}

	writeJSONResponse(res, client)
}

// basketAddHandler processes requests to add an item to a client's basket.
// It retrieves the client ID from the URL and the item name and amount from the body.
func (handlers *handlers) basketAddHandler(res http.ResponseWriter, req *http.Request) {
	basketRequest, ok := readBasketRequest(res, req)
	if !ok {
		return
	}

	clientID := chi.URLParam(req, "id")
	if err := handlers.app.ProcessBasketAdd(clientID, basketRequest); err != nil {
		writeDomainError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// basketRemoveHandler processes requests to remove an item from a client's basket.
func (handlers *handlers) basketRemoveHandler(res http.ResponseWriter, req *http.Request) {
	basketRequest, ok := readBasketRequest(res, req)
	if !ok {
		return
	}

	clientID := chi.URLParam(req, "id")
	if err := handlers.app.ProcessBasketRemove(clientID, basketRequest); err != nil {
		writeDomainError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// purchaseHandler processes requests to execute a client's basket as a purchase.
// It retrieves the client ID from the URL and an optional purchase date from the body,
// and returns the recorded transaction in JSON format.
func (handlers *handlers) purchaseHandler(res http.ResponseWriter, req *http.Request) {
	var purchaseRequest models.PurchaseRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if len(requestBody) > 0 {
		if err = json.Unmarshal(requestBody, &purchaseRequest); err != nil {
			writeErrorResponse(res, err.Error(), http.StatusBadRequest)
			return
		}
	}

	clientID := chi.URLParam(req, "id")
	purchase, err := handlers.app.ProcessPurchase(clientID, purchaseRequest)
	if err != nil {
		writeDomainError(res, err)
		return
	}

	writeJSONResponse(res, purchase)
}

// historyHandler retrieves a client's purchase history, newest date first.
func (handlers *handlers) historyHandler(res http.ResponseWriter, req *http.Request) {
	clientID := chi.URLParam(req, "id")

	history, err := handlers.app.ProcessHistory(clientID)
	if err != nil {
		writeDomainError(res, err)
		return
	}

	writeJSONResponse(res, history)
}

// infoHandler retrieves the current store state: inventory, registered clients
// and the store-wide purchase log, in JSON format.
func (handlers *handlers) infoHandler(res http.ResponseWriter, req *http.Request) {
	info, err := handlers.app.ProcessInfo()
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, info)
}

// readBasketRequest reads and unmarshals a basket mutation payload,
// writing an error response and reporting false when the payload is unusable.
func readBasketRequest(res http.ResponseWriter, req *http.Request) (models.BasketRequest, bool) {
	var basketRequest models.BasketRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return basketRequest, false
	}

	if err = json.Unmarshal(requestBody, &basketRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return basketRequest, false
	}

	return basketRequest, true
}

// writeDomainError maps app and store errors to HTTP status codes:
// unknown client or item to 404, every validation or state failure to 400,
// anything unexpected to 500.
func writeDomainError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrUnknownClient):
		writeErrorResponse(res, "unknown client", http.StatusNotFound)
	case errors.Is(err, app.ErrUnknownItem):
		writeErrorResponse(res, "unknown item", http.StatusNotFound)
	case errors.Is(err, store.ErrInvalidArgument),
		errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrInsufficientFunds),
		errors.Is(err, store.ErrClientNotRegistered),
		errors.Is(err, store.ErrNotInBasket),
		errors.Is(err, store.ErrRemoveExceedsHeld):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	default:
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSONResponse(res http.ResponseWriter, payload any) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}

package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online_store/internal/models"
	"online_store/internal/pkg/logger"
	"online_store/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	l, err := logger.CreateLogger("info")
	require.NoError(t, err)
	return NewApp(store.NewStore(), l)
}

func TestProcessAddItem(t *testing.T) {
	appInstance := newTestApp(t)

	t.Run("Missing fields", func(t *testing.T) {
		assert.ErrorIs(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "", Amount: 1}), ErrMissingItemFields)
		assert.ErrorIs(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "apelsin"}), ErrMissingItemFields)
	})

	t.Run("Negative price", func(t *testing.T) {
		err := appInstance.ProcessAddItem(models.AddItemRequest{Name: "apelsin", Price: -4, Amount: 1})
		assert.ErrorIs(t, err, store.ErrInvalidArgument)
	})

	t.Run("Stock and restock", func(t *testing.T) {
		require.NoError(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "apelsin", Price: 4, Amount: 2}))
		require.NoError(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "apelsin", Price: 99, Amount: 3}))

		info, err := appInstance.ProcessInfo()
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"apelsin": 5}, info.Storage)
	})
}

func TestProcessRegisterClient(t *testing.T) {
	appInstance := newTestApp(t)

	t.Run("Missing type", func(t *testing.T) {
		_, err := appInstance.ProcessRegisterClient(models.RegisterClientRequest{Balance: 100})
		assert.ErrorIs(t, err, ErrMissingClientType)
	})

	t.Run("Invalid type", func(t *testing.T) {
		_, err := appInstance.ProcessRegisterClient(models.RegisterClientRequest{Type: "silver", Balance: 100})
		assert.ErrorIs(t, err, store.ErrInvalidArgument)
	})

	t.Run("Explicit ID kept", func(t *testing.T) {
		client, err := appInstance.ProcessRegisterClient(models.RegisterClientRequest{ID: "123", Type: "regular", Balance: 1000})
		require.NoError(t, err)
		assert.Equal(t, "123", client.ID)
		assert.Equal(t, "regular", client.Type)
		assert.InDelta(t, 1000, client.Balance, 0)
	})

	t.Run("Generated ID is a UUID", func(t *testing.T) {
		client, err := appInstance.ProcessRegisterClient(models.RegisterClientRequest{Type: "gold", Balance: 200.5})
		require.NoError(t, err)

		_, err = uuid.Parse(client.ID)
		assert.NoError(t, err)
	})
}

func TestProcessBasketOperations(t *testing.T) {
	appInstance := newTestApp(t)

	require.NoError(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "apelsin", Price: 4, Amount: 6}))
	_, err := appInstance.ProcessRegisterClient(models.RegisterClientRequest{ID: "123", Type: "regular", Balance: 1000})
	require.NoError(t, err)

	t.Run("Unknown client", func(t *testing.T) {
		err := appInstance.ProcessBasketAdd("999", models.BasketRequest{Item: "apelsin", Amount: 1})
		assert.ErrorIs(t, err, ErrUnknownClient)
	})

	t.Run("Unknown item", func(t *testing.T) {
		err := appInstance.ProcessBasketAdd("123", models.BasketRequest{Item: "banaan", Amount: 1})
		assert.ErrorIs(t, err, ErrUnknownItem)
	})

	t.Run("Add and remove", func(t *testing.T) {
		require.NoError(t, appInstance.ProcessBasketAdd("123", models.BasketRequest{Item: "apelsin", Amount: 3}))
		require.NoError(t, appInstance.ProcessBasketRemove("123", models.BasketRequest{Item: "apelsin", Amount: 1}))

		err := appInstance.ProcessBasketRemove("123", models.BasketRequest{Item: "apelsin", Amount: 5})
		assert.ErrorIs(t, err, store.ErrRemoveExceedsHeld)
	})
}

func TestProcessPurchase(t *testing.T) {
	appInstance := newTestApp(t)

	require.NoError(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "apelsin", Price: 4, Amount: 6}))
	require.NoError(t, appInstance.ProcessAddItem(models.AddItemRequest{Name: "banaan", Price: 3, Amount: 7}))
	_, err := appInstance.ProcessRegisterClient(models.RegisterClientRequest{ID: "123", Type: "regular", Balance: 1000})
	require.NoError(t, err)

	require.NoError(t, appInstance.ProcessBasketAdd("123", models.BasketRequest{Item: "apelsin", Amount: 1}))
	require.NoError(t, appInstance.ProcessBasketAdd("123", models.BasketRequest{Item: "banaan", Amount: 4}))

	purchase, err := appInstance.ProcessPurchase("123", models.PurchaseRequest{Date: "01.06.2023"})
	require.NoError(t, err)
	assert.Equal(t, "01.06.2023", purchase.Date)
	assert.Equal(t, []string{"apelsin x1", "banaan x4"}, purchase.Lines)
	assert.InDelta(t, 984, purchase.Balance, 0)

	t.Run("Unknown client", func(t *testing.T) {
		_, err := appInstance.ProcessPurchase("999", models.PurchaseRequest{})
		assert.ErrorIs(t, err, ErrUnknownClient)
	})

	t.Run("History reflects the purchase", func(t *testing.T) {
		history, err := appInstance.ProcessHistory("123")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "01.06.2023", history[0].Date)
		assert.Equal(t, []string{"apelsin x1", "banaan x4"}, history[0].Lines)
	})

	t.Run("Info reflects the purchase", func(t *testing.T) {
		info, err := appInstance.ProcessInfo()
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"apelsin": 5, "banaan": 3}, info.Storage)
		require.Len(t, info.Clients, 1)
		assert.Equal(t, "123", info.Clients[0].ID)
		require.Len(t, info.Purchases, 1)
		assert.Equal(t, "123", info.Purchases[0].ClientID)
	})
}

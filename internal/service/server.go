package service

import (
	"online_store/internal/app"
	"online_store/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and a logger for event and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// It applies logging middleware globally.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())
	router.Post("/api/items", service.handlers.addItemHandler)
	router.Post("/api/clients", service.handlers.registerClientHandler)
	router.Route("/api/clients/{id}", func(r chi.Router) {
		r.Post("/basket/add", service.handlers.basketAddHandler)
		r.Post("/basket/remove", service.handlers.basketRemoveHandler)
		r.Post("/purchase", service.handlers.purchaseHandler)
		r.Get("/history", service.handlers.historyHandler)
	})
	router.Get("/api/info", service.handlers.infoHandler)
	return router
}

package routes

import (
	"net/http"

	"socialmedia/handlers"
	"socialmedia/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(handler *handlers.Handler, systemHandler *handlers.SystemHandler) http.Handler {
	router := mux.NewRouter()
	router.Use(monitoring.InstrumentHandler)

	// Account routes
	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/accounts/{account_id}/messages", handler.GetMessagesByAccount).Methods(http.MethodGet)

	// Message routes
	router.HandleFunc("/messages", handler.CreateMessage).Methods(http.MethodPost)
	router.HandleFunc("/messages", handler.GetMessages).Methods(http.MethodGet)
	router.HandleFunc("/messages/{message_id}", handler.GetMessage).Methods(http.MethodGet)
	router.HandleFunc("/messages/{message_id}", handler.DeleteMessage).Methods(http.MethodDelete)
	router.HandleFunc("/messages/{message_id}", handler.UpdateMessage).Methods(http.MethodPatch)

	// System routes
	router.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

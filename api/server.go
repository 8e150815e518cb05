// Package api wires the message service to a gorilla/mux router behind
// a uniform JSON envelope with stable error-code to status mapping.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter builds the REST surface under /api/v1/messages.
// Fixed segments register before the {id} wildcard so "conversation"
// and "count" are never parsed as identifiers.
func NewRouter(handler *MessageHandler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	messages := router.PathPrefix("/api/v1/messages").Subrouter()
	messages.HandleFunc("/conversation", handler.Conversation).Methods(http.MethodGet)
	messages.HandleFunc("/count", handler.Count).Methods(http.MethodGet)
	messages.HandleFunc("", handler.Create).Methods(http.MethodPost)
	messages.HandleFunc("", handler.List).Methods(http.MethodGet)
	messages.HandleFunc("", handler.DeleteAll).Methods(http.MethodDelete)
	messages.HandleFunc("/{id}", handler.GetByID).Methods(http.MethodGet)
	messages.HandleFunc("/{id}", handler.Update).Methods(http.MethodPut)
	messages.HandleFunc("/{id}", handler.Delete).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

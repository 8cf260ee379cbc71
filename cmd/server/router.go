package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/PatrickPenner/shopping-list-api/internal/api"
	apiMiddleware "github.com/PatrickPenner/shopping-list-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// The API serves browser frontends from arbitrary origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	listHandler := api.NewListHandler(app.listService)

	// Trailing slashes are part of the documented paths, so both
	// spellings of each route are registered.
	post := func(r chi.Router, pattern string, h http.HandlerFunc) {
		r.Post(pattern, h)
		r.Post(pattern+"/", h)
	}
	get := func(r chi.Router, pattern string, h http.HandlerFunc) {
		r.Get(pattern, h)
		r.Get(pattern+"/", h)
	}
	put := func(r chi.Router, pattern string, h http.HandlerFunc) {
		r.Put(pattern, h)
		r.Put(pattern+"/", h)
	}

	// Authentication endpoint (public)
	post(r, "/auth", authHandler.Token)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		get(r, "/lists", listHandler.GetLists)
		post(r, "/lists", listHandler.CreateList)
		put(r, "/lists/{listID}", listHandler.UpdateList)
		get(r, "/lists/{listID}/items", listHandler.GetItems)
		put(r, "/lists/{listID}/items/{itemID}", listHandler.UpdateItem)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

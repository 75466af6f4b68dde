package server

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/coffee-pos/internal/auth"
	"github.com/example/coffee-pos/internal/server/middleware"
)

// NewRouter wires the POS API routes. Everything except login requires a
// bearer token.
func NewRouter(handlers *Handlers, jwtService *auth.JWTService) http.Handler {
	r := mux.NewRouter()
	r.Use(withLogging)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", handlers.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(jwtService))
	protected.HandleFunc("/products", handlers.GetProducts).Methods(http.MethodGet)
	protected.HandleFunc("/orders", handlers.CreateOrder).Methods(http.MethodPost)
	protected.HandleFunc("/reports/daily_sales", handlers.DailySales).Methods(http.MethodGet)
	protected.HandleFunc("/reports/daily_profit", handlers.DailyProfit).Methods(http.MethodGet)

	return r
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[API] %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joledev/quoter/internal/catalog"
	"github.com/joledev/quoter/internal/config"
	"github.com/joledev/quoter/internal/db"
	"github.com/joledev/quoter/internal/migrations"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "migrations"); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	cat, err := catalog.Load(database)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	srv := newServer(cat, cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(corsMiddleware(cfg.CORSOrigin))

	r.Get("/health", srv.handleHealth)
	r.Get("/api/catalog", srv.handleCatalog)
	r.Post("/api/quote", srv.handleQuote)
	r.Get("/api/payment-plans", srv.handlePaymentPlans)
	r.Post("/api/submissions", srv.handleCreateSubmission)

	addr := ":" + cfg.Port
	log.Printf("quoter listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

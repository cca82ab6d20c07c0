package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/georgemunganga/catalogue-service/internal/config"
	"github.com/georgemunganga/catalogue-service/internal/middleware"
	"github.com/georgemunganga/catalogue-service/internal/modules/catalogue"
	"github.com/georgemunganga/catalogue-service/internal/modules/inventory"
	"github.com/georgemunganga/catalogue-service/pkg/logging"
	"github.com/georgemunganga/catalogue-service/pkg/shutdown"
)

func main() {
	log := logging.New()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("ping database", "error", err)
		os.Exit(1)
	}
	log.Info("connected to database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.WithCorrelationID)
	router.Use(middleware.RequestLogger(log))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// ── Catalogue ───────────────────────────────────────────
	invClient := inventory.NewHTTPClient(log, cfg.InventoryBaseURL, cfg.InventoryTimeout)
	catalogueRepo := catalogue.NewPostgresRepository(db)
	catalogueService := catalogue.NewService(log, catalogueRepo, invClient)
	catalogue.NewHandler(catalogueService).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	go func() {
		log.Info("catalogue API server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nashbilliard/billsplit/docs"
	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/config"
	"github.com/nashbilliard/billsplit/internal/database"
	"github.com/nashbilliard/billsplit/internal/label"
	"github.com/nashbilliard/billsplit/internal/preference"
	"github.com/nashbilliard/billsplit/pkg/logging"
	mw "github.com/nashbilliard/billsplit/pkg/middleware"
	"github.com/nashbilliard/billsplit/pkg/response"
)

// @title        Billsplit API
// @version      1.0
// @description  Splits a billiards table bill between players by attended minutes and consumables.
// @BasePath     /api/v1
func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load(config.Path())
	if err != nil {
		logging.Setup("info")
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)
	if envErr != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	// Amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize database connection
	db, err := database.Open(context.Background(), cfg.Database.URL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Connected to database", "driver", db.Driver)

	// Allocation Policy Factory (Factory Pattern)
	policyFactory := allocation.NewPolicyFactory()

	// Bill feature (with policy factory injected)
	billService := bill.NewService(policyFactory, cfg.BillOptions())
	billHandler := bill.NewHandler(billService)

	// Preference feature
	preferenceRepo := preference.NewRepository(db)
	preferenceService := preference.NewService(preferenceRepo, cfg.Display.DarkMode)
	preferenceHandler := preference.NewHandler(preferenceService)

	// Label feature
	labelHandler := label.NewHandler(cfg.Locale())

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(mw.Locale(cfg.Locale()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/bills", billHandler.Routes())
		r.Mount("/preferences", preferenceHandler.Routes())
		r.Mount("/labels", labelHandler.Routes())
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Server starting", "port", cfg.Port, "policy", cfg.PolicyType(), "locale", cfg.Locale().String())
	if err := serve(server, stop); err != nil {
		slog.Error("Server failed", "error", err)
		db.Close()
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// serve runs the server until a signal arrives on stop
func serve(server *http.Server, stop <-chan os.Signal) error {
	go func() {
		<-stop
		server.Close()
	}()

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

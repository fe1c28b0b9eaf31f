package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/metro-go/api/handlers"
	"github.com/jusunglee/metro-go/api/middleware"
	"github.com/jusunglee/metro-go/internal/config"
	"github.com/jusunglee/metro-go/internal/logger"
	"github.com/jusunglee/metro-go/pkg/metro"
)

func main() {
	var (
		configFile   = flag.String("config", "", "YAML config file")
		port         = flag.Int("port", 0, "Server port (overrides config)")
		stationsFile = flag.String("stations-file", "", "Station table: .csv, .yaml or .pb (overrides config)")
		logLevel     = flag.String("log-level", "", "Log level: debug|info|warn|error (overrides config)")
	)
	flag.Parse()

	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	// Flags take precedence over environment
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *stationsFile != "" {
		cfg.Data.StationsFile = *stationsFile
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	client, err := metro.NewLocal(metro.Config{
		StationsFile: cfg.Data.StationsFile,
		CacheSize:    cfg.Planner.CacheSize,
		CacheTTL:     cfg.Planner.CacheTTL,
		Logger:       log,
	})
	if err != nil {
		log.Error("Failed to create metro client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := run(cfg, client, log); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}

func run(cfg config.AppConfig, client metro.Client, log *slog.Logger) error {
	r := mux.NewRouter()
	h := handlers.NewHandler(client)
	h.RegisterRoutes(r)

	// Add middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recovery(log))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		// Graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"airdemo/bookings/internal/api"
	"airdemo/bookings/internal/config"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/logging"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/routes"
)

// @title Airline Bookings API
// @version 1.0
// @description Data access service over the airline bookings schema.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.Primary.Env, cfg.Primary.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Bookings service starting up",
		"environment", cfg.Primary.Env,
		"driver", cfg.Database.Driver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		logging.Fatal("Failed to connect to database", "error", err)
	}
	defer func() {
		if err := conn.Disconnect(); err != nil {
			logging.Error("Failed to disconnect", "error", err)
		}
	}()

	metricsReg := metrics.NewMetricsRegistry()
	deps := api.InitDependencies(conn, metricsReg)

	// A table that fails here is logged; the service still serves the rest.
	if err := deps.Repo.EnsureSchemas(ctx); err != nil {
		logging.Error("Schema setup incomplete", "error", err)
	}

	upSince := time.Now()
	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Server.Port),
		Handler:      routes.RegisterRoutes(deps, cfg.Server, upSince),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.Primary.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err)
	}
}

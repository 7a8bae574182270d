// Command ensure_schema creates any missing bookings tables and, when given a
// file, imports airports from it.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/config"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/db/repositories"
	"airdemo/bookings/internal/logging"
)

func main() {
	airports := flag.String("airports", "", "airport JSON document to import after the schema is in place")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logging.Init(cfg.Primary.Env, cfg.Primary.LogLevel); err != nil {
		log.Fatalf("init logger: %v", err)
	}

	os.Exit(run(cfg, *airports, *timeout))
}

func run(cfg *config.Config, airportsFile string, timeout time.Duration) int {
	defer logging.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		logging.Error("connect", "error", err)
		return 1
	}
	defer conn.Disconnect()

	repos := repositories.New(conn, nil)
	if err := repos.EnsureSchemas(ctx); err != nil {
		logging.Error("ensure schemas", "error", err)
		return 1
	}
	logging.Info("Schemas ready", "dialect", conn.Dialect())

	if airportsFile == "" {
		return 0
	}
	res, err := common.NewAirportLoaderService(repos.Airports, nil).LoadFromFile(ctx, airportsFile)
	if err != nil {
		logging.Error("import airports", "file", airportsFile, "error", err)
		return 1
	}
	logging.Info("Airports imported", "created", res.Created, "skipped", res.Skipped, "total", res.Total)
	return 0
}

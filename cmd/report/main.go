package main

import (
	"flag"
	"log"

	"github.com/wingworks/catering-configurator-backend/internal/cli"
	"github.com/wingworks/catering-configurator-backend/internal/config"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

func main() {
	var (
		dbPath     string
		configFile string
		limit      int
		status     string
	)
	flag.StringVar(&dbPath, "db", "", "Path to database file (uses config if not specified)")
	flag.StringVar(&configFile, "config", "config.yaml", "Configuration file path")
	flag.IntVar(&limit, "limit", 20, "Number of recent orders to show")
	flag.StringVar(&status, "status", "", "Filter orders by status")
	flag.Parse()

	if dbPath == "" {
		cfg := config.LoadOrEnvWithPath(configFile)
		dbPath = cfg.Storage.DatabasePath
	}

	store, err := storage.NewStorage(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	cli.PrintHeader(dbPath)

	stats, err := store.GetStats()
	if err != nil {
		log.Fatalf("failed to read stats: %v", err)
	}
	cli.PrintStats(stats)

	orders, err := store.ListOrders(storage.OrderFilters{Status: status, Limit: limit})
	if err != nil {
		log.Fatalf("failed to list orders: %v", err)
	}
	cli.PrintOrders(orders)
}

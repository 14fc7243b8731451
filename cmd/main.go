// Command cmd regroups every stored weekend plan and saves the result.
// Useful after importing a document whose groups are missing or stale.
package main

import (
	"Gamehub/config"
	"Gamehub/services/planner"
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.Prod, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	st, closeStore, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Error connecting to the store", zap.Error(err))
	}

	svc := planner.New(st, planner.WithLogger(logger), planner.WithLocation(cfg.Location))
	groups, overflow, err := svc.Reconcile(ctx)
	closeStore()
	if err != nil {
		logger.Error("Reconcile failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("%d groups, %d plans left out of full groups\n", groups, overflow)
}

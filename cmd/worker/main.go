package main

import (
	"context"
	"log"

	"github.com/UniChain-25-26J-287/uni-repo-backend/config"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics"
	cronjob "github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics/cron"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/bootstrap"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	catalog, err := store.New(ctx, rdb, store.Options{})
	if err != nil {
		log.Fatalf("project store: %v", err)
	}

	var repo *analytics.SnapshotRepository
	if cfg.Database.DSN != "" {
		sqlDB, err := bootstrap.OpenSQL(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("sql db: %v", err)
		}
		defer sqlDB.Close()
		repo = analytics.NewSnapshotRepository(sqlDB)
	}

	chainClient := chain.NewClient(cfg.Chain.GatewayURL, cfg.Chain.ContractAddress)
	registry := chain.NewRegistry(chainClient)

	scheduler := cronjob.NewScheduler(analytics.NewService(catalog, repo), registry)
	scheduler.Start()

	select {} // run until killed
}

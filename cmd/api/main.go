package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UniChain-25-26J-287/uni-repo-backend/config"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/ai"
	aihttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/ai/http"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics"
	analyticshttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics/http"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/auth"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/blob"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/bootstrap"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain"
	chainhttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain/http"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/pinning"
	projectshttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/http"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/store"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/students"
	studentshttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/students/http"
)

const serviceName = "uni-repo-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

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

	// Postgres backs the roster and analytics; the catalog works without it.
	var pool *pgxpool.Pool
	var sqlDB *sql.DB
	if cfg.Database.DSN != "" {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()

		sqlDB, err = bootstrap.OpenSQL(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("sql db: %v", err)
		}
		defer sqlDB.Close()
	} else {
		log.Println("DB_DSN not set; roster and snapshot features disabled")
	}

	chainClient := chain.NewClient(cfg.Chain.GatewayURL, cfg.Chain.ContractAddress)
	registry := chain.NewRegistry(chainClient)
	if err := registry.Refresh(ctx); err != nil {
		log.Printf("registry refresh failed, using seeded enumerations: %v", err)
	}

	pinClient := pinning.NewClient(cfg.Pinning.BaseURL, cfg.Pinning.JWT)

	archive, err := blob.New(ctx, cfg.Archive)
	if err != nil {
		log.Fatalf("archive: %v", err)
	}

	aiService := ai.NewService(ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model))

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          pool,
		RDB:         rdb,
		Projects:    projectshttp.New(catalog, chainClient, pinClient, archive),
		Chain:       chainhttp.New(registry, chainClient),
		AI:          aihttp.New(aiService, catalog),
	}

	if pool != nil {
		deps.Students = studentshttp.New(students.NewRepo(pool))
	}
	if sqlDB != nil {
		svc := analytics.NewService(catalog, analytics.NewSnapshotRepository(sqlDB))
		deps.Analytics = analyticshttp.New(svc)
	}

	if cfg.Firebase.CredentialsPath != "" {
		authClient, err := auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		deps.FirebaseAuth = authClient
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("%s %s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

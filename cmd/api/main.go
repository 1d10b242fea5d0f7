package main

import (
	"context"
	"log"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/archfind/arch-backend/config"
	"github.com/archfind/arch-backend/internal/auth"
	"github.com/archfind/arch-backend/internal/bootstrap"
	"github.com/archfind/arch-backend/internal/design/costing"
	"github.com/archfind/arch-backend/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	usersDB, err := bootstrap.OpenSQL(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("users db: %v", err)
	}
	defer usersDB.Close()

	cache, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("redis unavailable, price caching disabled: %v", err)
		cache = nil
	}

	var authClient *fbauth.Client
	if cfg.Firebase.CredentialsPath != "" {
		authClient, err = auth.InitializeFirebase(cfg.Firebase.CredentialsPath)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	}

	var source costing.PriceSource
	if cfg.Pricing.Enabled {
		awsSource, err := pricing.NewAWSSource(ctx, cfg.Pricing.Region)
		if err != nil {
			log.Printf("live pricing unavailable, using static tables: %v", err)
		} else if cache != nil {
			source = pricing.NewCachedSource(awsSource, cache)
		} else {
			source = awsSource
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "arch-backend",
		Version:        cfg.App.Version,
		DB:             pool,
		UsersDB:        usersDB,
		Cache:          cache,
		FirebaseAuth:   authClient,
		PriceSource:    source,
		PricingTimeout: time.Duration(cfg.Pricing.TimeoutMS) * time.Millisecond,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

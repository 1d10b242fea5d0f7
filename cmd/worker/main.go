package main

import (
	"context"
	"log"
	"os"

	"github.com/archfind/arch-backend/config"
	"github.com/archfind/arch-backend/internal/bootstrap"
	"github.com/archfind/arch-backend/internal/pricing"
	cronjob "github.com/archfind/arch-backend/internal/pricing/cron"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker warm|cron")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	cache, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if cache == nil {
		log.Fatal("REDIS_ADDR is required for the pricing worker")
	}

	awsSource, err := pricing.NewAWSSource(ctx, cfg.Pricing.Region)
	if err != nil {
		log.Fatalf("aws pricing: %v", err)
	}

	sched := cronjob.NewScheduler(pricing.NewCachedSource(awsSource, cache))

	switch os.Args[1] {
	case "warm":
		sched.RunOnce()
	case "cron":
		sched.Start()
		select {} // run until killed
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

package main

import (
	"context"
	"log"
	nethttp "net/http"
	"os/signal"
	"syscall"

	"github.com/vaidikvista/panchang-api/config"
	"github.com/vaidikvista/panchang-api/db"
	httpserver "github.com/vaidikvista/panchang-api/http"
	"github.com/vaidikvista/panchang-api/internal/almanac"
	"github.com/vaidikvista/panchang-api/internal/cache"
	"github.com/vaidikvista/panchang-api/internal/location"
	"github.com/vaidikvista/panchang-api/internal/panchang"
	"github.com/vaidikvista/panchang-api/internal/reminder"
	"github.com/vaidikvista/panchang-api/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connection error: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("db schema error: %v", err)
	}

	var months *cache.MonthCache
	if cfg.RedisURL != "" {
		months, err = cache.New(ctx, cfg.RedisURL, cfg.MonthCacheTTL)
		if err != nil {
			log.Fatalf("redis connection error: %v", err)
		}
		defer months.Close()
	} else {
		log.Printf("REDIS_URL not set, month caching disabled")
	}

	client := almanac.New(cfg.AlmanacBaseURL, cfg.AlmanacAuthToken, &nethttp.Client{Timeout: cfg.AlmanacTimeout})
	resolver := location.NewResolver(client)
	panchangSvc := panchang.NewService(client)

	var appender *sheets.Appender
	if cfg.SheetConfigured() {
		appender, err = sheets.New(ctx, cfg.CredentialsFile, cfg.SheetID, cfg.SheetTab)
		if err != nil {
			log.Fatalf("sheets client error: %v", err)
		}
	} else {
		log.Printf("sheet append not configured, reminders persist to database only")
	}
	reminderSvc := reminder.NewService(store, appender)

	srv := httpserver.New(cfg, store, resolver, panchangSvc, reminderSvc, months)
	log.Printf("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"spice-garden/bot"
	"spice-garden/config"
	"spice-garden/db"
	"spice-garden/server"
	"spice-garden/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store session.Store
	switch cfg.Session.Store {
	case "postgres":
		if err := db.Init(cfg.DB); err != nil {
			fmt.Fprintln(os.Stderr, "db:", err)
			os.Exit(1)
		}
		defer db.Close()

		// Optional auto-migration (useful in production and for fresh DBs).
		// Set AUTO_MIGRATE=1 (or "true") to enable.
		if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
			if err := applyMigrations(ctx, false); err != nil {
				fmt.Fprintln(os.Stderr, "migrate:", err)
				os.Exit(1)
			}
		}
		store = session.NewPostgresStore(db.Pool)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			fmt.Fprintln(os.Stderr, "redis:", err)
			os.Exit(1)
		}
		defer client.Close()
		store = session.NewRedisStore(client, cfg.Session.TTL)

	default:
		mem := session.NewMemoryStore(cfg.Session.TTL)
		go mem.StartCleanupRoutine(ctx)
		store = mem
	}

	b := bot.New(store)

	if cfg.Telegram.Token != "" {
		tg, err := bot.NewTelegramBot(cfg.Telegram.Token, b)
		if err != nil {
			fmt.Fprintln(os.Stderr, "telegram bot:", err)
			os.Exit(1)
		}
		go tg.Start()
		log.Println("Telegram bot started.")
	}

	srv := server.New(cfg, b)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal...")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func runMigrate(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/go-storefront/internal/config"
	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/logx"
	"github.com/ariefcatur/go-storefront/internal/postgres"
	"github.com/ariefcatur/go-storefront/internal/redisx"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/ariefcatur/go-storefront/internal/sweeper"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logx.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	store := &shop.Repo{DB: db}
	cart := shop.NewCartEngine(store, redisx.NewCartCache(rdb, cfg.CartCacheTTL), log)

	svc := &sweeper.Service{
		Cart:        cart,
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-sweeper",
		Log:         log,
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.SweeperGroup, shop.TopicOrderPlaced, cfg.SweeperWorkers, log)
	done := make(chan error, 1)
	go func() {
		log.Info("cart sweeper started",
			zap.String("group", cfg.SweeperGroup),
			zap.String("topic", shop.TopicOrderPlaced),
			zap.Int("workers", cfg.SweeperWorkers))
		done <- cons.Start(ctx, svc.HandleOrderPlaced)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
		log.Info("shutting down")
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			// uncommitted offset is redelivered once the process is restarted
			log.Error("consumer stopped", zap.Error(err))
			exitCode = 1
		}
	}
}

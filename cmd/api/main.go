package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-storefront/internal/config"
	"github.com/ariefcatur/go-storefront/internal/httpx"
	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/locale"
	"github.com/ariefcatur/go-storefront/internal/logx"
	"github.com/ariefcatur/go-storefront/internal/postgres"
	"github.com/ariefcatur/go-storefront/internal/redisx"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logx.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store
	var store shop.Store
	switch cfg.StoreBackend {
	case "memory":
		store = shop.NewMemStore()
		log.Warn("using in-memory store; data is lost on restart")
	default:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal("db connect", zap.Error(err))
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatal("db migrate", zap.Error(err))
		}
		store = &shop.Repo{DB: db}
	}

	// Redis cart cache
	var cache shop.CartViewCache
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, cart cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			cache = redisx.NewCartCache(rdb, cfg.CartCacheTTL)
		}
	}

	// Kafka producer
	var pub shop.Publisher
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, shop.TopicOrderPlaced, 1024, log)
		prod.Start()
		pub = prod
	}

	tr, err := locale.New(cfg.DefaultLang)
	if err != nil {
		log.Fatal("locale", zap.Error(err))
	}

	catalog := shop.NewCatalog(store, log)
	cart := shop.NewCartEngine(store, cache, log)
	assembler := shop.NewOrderAssembler(store, cart, pub, cfg.ShippingFee, cfg.ServiceName, log)

	if cfg.AutoSeed {
		if _, err := catalog.Seed(ctx); err != nil {
			log.Fatal("seed", zap.Error(err))
		}
	}

	router := httpx.NewRouter(log)
	httpx.Mount(router, httpx.Deps{
		Catalog: catalog,
		Cart:    cart,
		Orders:  assembler,
		Locale:  tr,
		Log:     log,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close() // flush pending events
		prod.WaitClosed()
	}
}

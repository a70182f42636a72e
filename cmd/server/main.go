package main

import (
	"context"
	"net/http"

	"noir-be/internal/admin"
	"noir-be/internal/api"
	"noir-be/internal/cart"
	"noir-be/internal/catalog"
	"noir-be/internal/checkout"
	"noir-be/internal/config"
	"noir-be/internal/db"
	"noir-be/internal/logger"
	"noir-be/internal/mode"
	"noir-be/internal/shopify"
	"noir-be/internal/signup"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// Cart persistence degrades to in-process memory when redis is
	// unreachable; a user action never fails on the mirror.
	var cartStorage cart.Storage
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.L().Warn("redis unreachable, carts held in memory only", zap.Error(err))
		cartStorage = cart.NewMemoryStorage()
	} else {
		cartStorage = cart.NewRedisStorage(redisClient)
	}

	var catalogSvc catalog.Service
	var checkoutSvc checkout.Service
	commerce, err := shopify.NewClient(cfg)
	if err != nil {
		// Commerce-dependent pages render a configuration error; the
		// rest of the site stays up.
		logger.L().Error("shopify client disabled", zap.Error(err))
	} else {
		catalogSvc = catalog.NewService(commerce)
		checkoutSvc = checkout.NewService(commerce)
	}

	modeSvc := mode.NewService(mode.NewRepository(database))
	signupSvc := signup.NewService(
		signup.NewRepository(database),
		signup.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom),
	)

	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	watcher := mode.NewWatcher(modeSvc, mode.DefaultPollInterval, nil)
	go watcher.Run(watcherCtx)

	router := api.NewRouter(api.Deps{
		Catalog:    catalogSvc,
		Carts:      cart.NewManager(cartStorage),
		Mode:       modeSvc,
		Checkout:   checkoutSvc,
		Signup:     signupSvc,
		Auth:       admin.NewAuth(cfg.AdminPasswordHash, cfg.JWTSecret),
		CORSOrigin: cfg.CORSOrigin,
	})

	logger.L().Info("storefront API listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

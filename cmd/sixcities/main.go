package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sixcities/internal/config"
	"sixcities/internal/model"
	"sixcities/internal/selector"
	"sixcities/internal/store"
	"sixcities/internal/token"
	"sixcities/internal/workflow"
	"sixcities/pkg/api"
	"sixcities/pkg/logger"
	"sixcities/pkg/redis"
)

// ENTRY POINT

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	redisClient := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()
	if err := redisClient.Connect(ctx, zapLogger); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	tokens := token.NewRedisStore(redisClient, cfg.TokenKey, zapLogger)
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.HTTPRequestTimeout, tokens, zapLogger)

	st := store.New()
	app := workflow.New(apiClient, st, tokens, zapLogger)

	if err := app.CheckAuth(ctx); err != nil {
		zapLogger.Fatal("Auth check failed", zap.Error(err))
	}
	if err := app.FetchOffers(ctx); err != nil {
		zapLogger.Fatal("Offers fetch failed", zap.Error(err))
	}

	state := st.State()
	zapLogger.Info("Catalog loaded",
		zap.Int("offers", len(state.Catalog.Offers)),
		zap.String("auth_status", string(state.Session.Status)),
		zap.Int("favorites", selector.FavoritesCount(state.Favorites.Favorites)))

	for _, city := range model.Cities() {
		offers := selector.OffersForCity(state.Catalog.Offers, city)
		cheapest := selector.SortOffers(offers, model.SortPriceAsc)
		summary := fmt.Sprintf("%-12s %3d offers", city, len(offers))
		if len(cheapest) > 0 {
			summary += fmt.Sprintf(", from €%d", cheapest[0].Price)
		}
		fmt.Println(summary)
	}
}

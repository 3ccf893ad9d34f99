package main

import (
	"context"
	"os"
	"time"

	"timefilter-core/internal/adapter/api"
	"timefilter-core/internal/adapter/client"
	"timefilter-core/internal/adapter/store"
	"timefilter-core/internal/config"
	"timefilter-core/internal/domain/repository"
	"timefilter-core/internal/logger"
	"timefilter-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "timefilter"})
	log := logger.Named("server")
	ctx := context.Background()

	genaiClient, err := client.NewGeminiClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init genai client")
	}

	primaryModel := client.NewGeminiCompleter(genaiClient, cfg.FilterModel)
	fallbackModel := client.NewGeminiCompleter(genaiClient, cfg.FallbackModel)

	var provider repository.TextCompletionProvider = usecase.NewResilientProvider(primaryModel, fallbackModel, cfg.ModelTimeout)

	// Redis is optional, it only saves repeated model calls.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		provider = usecase.NewCachingProvider(provider, store.NewRedisAnswerCache(rdb), cfg.AnswerCacheTTL)
	}

	resolver := usecase.NewResolver(usecase.NewInterpreter(provider), cfg.DisableTimeFilterExtraction)
	if cfg.DisableTimeFilterExtraction {
		log.Info().Msg("time filter extraction disabled, only explicit filters apply")
	}

	var searcher *usecase.Searcher
	if cfg.QdrantHost != "" {
		qClient, err := qdrant.NewClient(&qdrant.Config{
			Host: cfg.QdrantHost,
			Port: cfg.QdrantPort,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to qdrant")
		}

		index := store.NewQdrantIndex(qClient, cfg.QdrantCollection)
		initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = index.InitCollection(initCtx, cfg.EmbeddingDim)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init qdrant collection")
		}

		searcher = usecase.NewSearcher(resolver, client.NewEmbedderFromClient(genaiClient, cfg.EmbeddingModel), index)
	}

	app := fiber.New(fiber.Config{
		AppName: "Time Filter Resolver",
	})
	api.SetupRouter(app, api.NewFilterHandler(resolver, searcher), api.Info{Version: cfg.Version, Env: cfg.Env})

	log.Info().Str("port", cfg.Port).Bool("search", searcher != nil).Msg("time filter resolver running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

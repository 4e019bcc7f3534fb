package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdduha/sceramath/internal/cache"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/handler"
	"github.com/kdduha/sceramath/internal/service"
	"github.com/kdduha/sceramath/internal/upstream"
	"github.com/kdduha/sceramath/internal/upstream/gemini"
	"github.com/kdduha/sceramath/internal/upstream/ollama"
	"github.com/kdduha/sceramath/internal/upstream/openai"

	_ "github.com/kdduha/sceramath/docs"
)

// @title SceraMath API
// @version 1.0
// @description Relay that forwards math problems to a hosted model and returns structured solutions.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()
	generator, err := newGenerator(cfg)
	if err != nil {
		logger.Fatalf("upstream error: %v", err)
	}
	logger.Printf("using %s upstream\n", generator.Name())

	solveService := service.NewSolveService(logger, generator)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Printf("redis ping failed, cache errors will be logged: %v\n", err)
		}
		solveService.SetCacheClient(redisCache)
		logger.Println("set redis as cache")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler.NewRouter(cfg.Server, handler.NewSolveHandler(logger, solveService)),
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}

func newGenerator(cfg *config.Config) (upstream.Generator, error) {
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}

	switch cfg.Upstream.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(httpClient, cfg.Gemini), nil
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.OpenAI), nil
	case config.ProviderOllama:
		return ollama.NewClient(httpClient, cfg.Ollama)
	default:
		return nil, fmt.Errorf("unsupported provider {%s}", cfg.Upstream.Provider)
	}
}

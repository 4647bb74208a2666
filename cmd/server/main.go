package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/adapter"
	openaiadapter "github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/adapter/openai"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/fallback"
	chatservice "github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/service"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/conf"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/pkg/logger"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/server"
	searchprovider "github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/provider"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/secrets"
	searchtypes "github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/types"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Local runs keep credentials in a .env file
	_ = godotenv.Load()

	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := logger.InitGlobal(logConfig); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	ctx := context.Background()

	secretSource, err := buildSecretSource(ctx, config)
	if err != nil {
		log.Fatal("failed to initialize secret source", zap.Error(err))
	}

	searcher, err := searchprovider.NewFactory().Create(&searchtypes.ProviderConfig{
		ID:         searchtypes.ProviderID(config.Search.Provider),
		Name:       config.Search.Provider,
		APIHost:    config.Search.APIHost,
		Timeout:    config.Search.Timeout,
		MaxRetries: config.Search.MaxRetries,
	}, secretSource, log.Logger)
	if err != nil {
		log.Fatal("failed to initialize search provider", zap.Error(err))
	}

	registry := adapter.NewRegistry()
	registerAdapters(registry, config, searcher, log.Logger)

	chatService := chatservice.NewChatService(registry, log.Logger)
	httpServer := server.NewHTTPServer(config, log, chatService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

// buildSecretSource assembles the secret provider chain for the search
// API key: the configured backing store, optionally wrapped with a TTL
// cache.
func buildSecretSource(ctx context.Context, config *conf.Config) (secrets.Provider, error) {
	var source secrets.Provider

	switch config.Secrets.Source {
	case "aws":
		sm, err := secrets.NewSecretsManager(ctx, config.Secrets.Region, config.Secrets.SecretARN)
		if err != nil {
			return nil, err
		}
		source = sm
	default:
		key := config.Secrets.APIKey
		if key == "" {
			key = os.Getenv("TAVILY_API_KEY")
		}
		source = secrets.NewStatic(key)
	}

	if config.Secrets.CacheTTL > 0 {
		source = secrets.NewCached(source, config.Secrets.CacheTTL)
	}
	return source, nil
}

// registerAdapters populates the model-pattern table. Later registrations
// override earlier broad ones for the same identifier, so the broad
// family entries come first and the search-wrapped variants last.
func registerAdapters(registry *adapter.Registry, config *conf.Config, searcher searchprovider.Provider, log *zap.Logger) {
	openaiConfig := &openaiadapter.Config{
		APIKey:  config.OpenAI.APIKey,
		BaseURL: config.OpenAI.BaseURL,
	}
	if openaiConfig.APIKey == "" {
		openaiConfig.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	plain := func(modelID string) (adapter.BaseAdapter, error) {
		return openaiadapter.New(openaiConfig, modelID, log)
	}
	withSearch := func(modelID string) (adapter.BaseAdapter, error) {
		base, err := plain(modelID)
		if err != nil {
			return nil, err
		}
		return fallback.NewOrchestrator(base, searcher, log), nil
	}

	registry.MustRegister(`^gpt-.*`, plain)
	registry.MustRegister(`^o[0-9].*`, plain)
	registry.MustRegister(`^(llama|mistral|mixtral)-.*`, plain)
	registry.MustRegister(`^claude.*`, plain)
	// Claude models get the web-search fallback
	registry.MustRegister(`^claude-(3|opus|sonnet|haiku).*`, withSearch)
}

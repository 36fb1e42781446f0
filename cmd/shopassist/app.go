package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/config"
	"github.com/kailas-cloud/shopassist/internal/db"
	dbRedis "github.com/kailas-cloud/shopassist/internal/db/redis"
	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	logpkg "github.com/kailas-cloud/shopassist/internal/logger"
	"github.com/kailas-cloud/shopassist/internal/metrics"
	"github.com/kailas-cloud/shopassist/internal/repository/catalog"
	"github.com/kailas-cloud/shopassist/internal/repository/embcache"
	"github.com/kailas-cloud/shopassist/internal/repository/inventory"
	openaiTransport "github.com/kailas-cloud/shopassist/internal/transport/openai"
	"github.com/kailas-cloud/shopassist/internal/usecase/assistant"
	embeddinguc "github.com/kailas-cloud/shopassist/internal/usecase/embedding"
	healthuc "github.com/kailas-cloud/shopassist/internal/usecase/health"
	indexinguc "github.com/kailas-cloud/shopassist/internal/usecase/indexing"
	searchuc "github.com/kailas-cloud/shopassist/internal/usecase/search"
)

const providerName = "openai"

// catalogSource yields the products to index.
type catalogSource interface {
	Products() ([]product.Product, error)
}

// app is the composition root shared by all commands.
type app struct {
	cfg       config.Config
	env       string
	logger    *zap.Logger
	store     *dbRedis.Store
	catalog   catalogSource
	inventory *inventory.Repo
	indexing  *indexinguc.Service
	search    *searchuc.Service
	assistant *assistant.Service
	health    *healthuc.Service

	// unavailable is set when the database could not be reached; only cfg, env and logger are wired then.
	unavailable error
}

// newApp loads configuration, connects to the search engine and wires every service.
// The .env file is loaded before the YAML config so ${VAR} expansion sees its values.
// Configuration errors are returned; an unreachable database is recorded in app.unavailable.
func newApp(ctx context.Context, envFile, configPath string) (*app, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	env := config.GetEnv()
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	algo, err := db.ParseVectorAlgorithm(cfg.Index.Algorithm)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("index algorithm: %w", err)
	}

	// Explicit registration, no init()
	metrics.Register()

	store, err := connect(ctx, cfg)
	if err != nil {
		logger.Error("Database unavailable",
			zap.String("driver", cfg.Database.Driver),
			zap.Strings("addrs", cfg.Database.Addrs),
			zap.Error(err),
		)
		return &app{cfg: cfg, env: env, logger: logger, unavailable: err}, nil
	}
	logger.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Strings("addrs", cfg.Database.Addrs),
	)

	base := openaiTransport.NewEmbedder(&openaiTransport.Config{
		APIKey:         cfg.Embedding.APIKey,
		BaseURL:        cfg.Embedding.BaseURL,
		Model:          cfg.Embedding.Model,
		Dimensions:     cfg.Embedding.Dimensions,
		SendDimensions: cfg.Embedding.SendDimensions,
		Timeout:        cfg.Embedding.Timeout(),
		Logger:         logger,
	})
	vectorizer := embeddinguc.NewVectorizer(
		buildEmbedder(cfg, base, store, logger),
		providerName, cfg.Embedding.Model, cfg.Embedding.Dimensions, logger,
	)

	repo := inventory.New(store, inventory.Config{
		IndexName: cfg.Index.Name,
		KeyPrefix: cfg.Index.KeyPrefix,
		Dims:      cfg.Embedding.Dimensions,
		Parts:     cfg.Index.Partitions,
		Algorithm: algo,
	})

	chat := openaiTransport.NewChatCompleter(&openaiTransport.ChatConfig{
		APIKey:  cfg.Generation.APIKey,
		BaseURL: cfg.Generation.BaseURL,
		Model:   cfg.Generation.Model,
		Timeout: cfg.Generation.Timeout(),
		Logger:  logger,
	})

	var src catalogSource = catalog.Static(product.DefaultCatalog())
	if cfg.Catalog.Path != "" {
		src = catalog.NewFile(cfg.Catalog.Path)
	}

	logger.Info("Services wired",
		zap.String("env", env),
		zap.String("index", cfg.Index.Name),
		zap.String("embedding_model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
		zap.Int("partitions", cfg.Index.Partitions),
		zap.String("generation_model", cfg.Generation.Model),
	)

	return &app{
		cfg:       cfg,
		env:       env,
		logger:    logger,
		store:     store,
		catalog:   src,
		inventory: repo,
		indexing:  indexinguc.New(repo, vectorizer, logger),
		search:    searchuc.New(repo, vectorizer, logger).WithDefaultTopK(cfg.Index.TopK),
		assistant: assistant.New(chat, cfg.Generation.Dish, logger),
		health:    healthuc.New(store, repo, base),
	}, nil
}

// connect opens the store and waits until it answers PING.
func connect(ctx context.Context, cfg config.Config) (*dbRedis.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Backend:  db.Backend(cfg.Database.Driver),
	})
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}

	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	return store, nil
}

// buildEmbedder assembles the provider chain: OpenAI -> Cached (when a TTL is configured).
func buildEmbedder(cfg config.Config, base domain.Embedder, store *dbRedis.Store, logger *zap.Logger) domain.Embedder {
	ttl := cfg.Embedding.CacheTTL()
	if ttl <= 0 {
		return base
	}
	// Model in the key keeps vectors of different models apart.
	return embcache.New(base, store, embcache.Options{
		KeyPrefix: cfg.Index.KeyPrefix + "emb_cache:" + cfg.Embedding.Model + ":",
		TTL:       ttl,
	}, metrics.EmbeddingCacheTotal, logger)
}

// products loads the catalog.
func (a *app) products() ([]product.Product, error) {
	products, err := a.catalog.Products()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return products, nil
}

// setup ensures the index exists and indexes the catalog per opts.
func (a *app) setup(ctx context.Context, opts indexinguc.SetupOptions) (indexinguc.SetupResult, error) {
	products, err := a.products()
	if err != nil {
		return indexinguc.SetupResult{}, err
	}
	return a.indexing.Setup(ctx, products, opts)
}

// Close releases the database connection and flushes logs.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	_ = a.logger.Sync()
}

package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"docreader/internal/chunking"
	"docreader/internal/chunking/lenfunc"
	"docreader/internal/config"
	"docreader/internal/ocr"
	"docreader/internal/parsers"
	"docreader/internal/services"
	"docreader/internal/storage"
	"docreader/internal/store"
	"docreader/internal/store/vector"

	"github.com/hibiken/asynq"
)

// App bundles every dependency the CLI and worker commands need to carry
// a document through parse, chunk, OCR, embed, and store, adapted from
// the teacher's App struct and trimmed to this module's pipeline.
type App struct {
	Config *config.Config
	Logger logrus.FieldLogger

	Parser   parsers.Parser
	Splitter *chunking.Splitter
	OCR      *ocr.Registry

	Storage interface {
		storage.Uploader
		storage.Downloader
	}

	EmbeddingService store.EmbeddingService
	VectorStore      store.VectorStore
	JobClient        store.JobClient
}

// NewApp wires the application from cfg, matching the teacher's
// NewApp(cfg, ...) -> (*App, error) shape, minus the knowledge-base
// services this module does not carry forward.
func NewApp(cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ctx := context.Background()
	a := &App{Config: cfg, Logger: logger}

	a.initParser()
	if err := a.initSplitter(); err != nil {
		return nil, err
	}
	a.OCR = ocr.NewRegistry(*cfg, logger)

	if err := a.initStorage(ctx); err != nil {
		return nil, err
	}
	if err := a.initEmbeddingService(); err != nil {
		a.cleanupPartialInit()
		return nil, err
	}
	if err := a.initVectorStore(ctx); err != nil {
		a.cleanupPartialInit()
		return nil, err
	}
	if err := a.initJobClient(); err != nil {
		a.cleanupPartialInit()
		return nil, err
	}

	logger.Info("application initialization complete")
	return a, nil
}

func (a *App) initParser() {
	a.Parser = parsers.ChainParser{
		Parsers: []parsers.Parser{
			parsers.MarkdownParser{},
			parsers.HTMLParser{},
			parsers.CSVParser{},
			parsers.TextParser{},
		},
		Logger: a.Logger,
	}
}

func (a *App) initSplitter() error {
	cfg := a.Config.Chunking
	chunkCfg := chunking.DefaultConfig()
	chunkCfg.Logger = a.Logger
	if cfg.MaxTokens > 0 {
		chunkCfg.ChunkSize = cfg.MaxTokens
	}
	if cfg.Overlap > 0 {
		chunkCfg.ChunkOverlap = cfg.Overlap
	}
	if cfg.Separators != nil {
		chunkCfg.Separators = cfg.Separators
	}
	if cfg.ProtectedPatterns != nil {
		chunkCfg.ProtectedPatterns = cfg.ProtectedPatterns
	}

	switch cfg.LenFunc {
	case "words":
		chunkCfg.LenFunc = lenfunc.WordCount
	case "sentences":
		chunkCfg.LenFunc = lenfunc.SentenceCount
	default:
		chunkCfg.LenFunc = chunking.RuneLen
	}

	splitter, err := chunking.New(chunkCfg)
	if err != nil {
		return fmt.Errorf("init chunking splitter: %w", err)
	}
	a.Splitter = splitter
	return nil
}

func (a *App) initStorage(ctx context.Context) error {
	minioCfg := a.Config.Storage.MinIO
	if minioCfg.Endpoint != "" {
		uploader, err := storage.NewMinIOUploader(ctx, storage.MinIOConfig{
			Endpoint:        minioCfg.Endpoint,
			AccessKeyID:     minioCfg.AccessKeyID,
			SecretAccessKey: minioCfg.SecretAccessKey,
			BucketName:      minioCfg.BucketName,
			UseSSL:          minioCfg.UseSSL,
			PublicURL:       minioCfg.PublicURL,
		})
		if err != nil {
			return fmt.Errorf("init minio storage: %w", err)
		}
		a.Storage = uploader
		return nil
	}

	dir := a.Config.Storage.LocalDir
	if dir == "" {
		dir = "./data/uploads"
	}
	a.Storage = storage.LocalUploader{Dir: dir}
	return nil
}

func (a *App) initEmbeddingService() error {
	cfg := a.Config

	provider, err := services.NewOpenAIProvider(cfg.Embedding.OpenAIAPIKey, cfg.Embedding.Model, a.Logger)
	if err != nil {
		return fmt.Errorf("init OpenAI embedding provider: %w", err)
	}

	retryStrategy := &services.SimpleRetryStrategy{MaxAttempts: 3, BaseDelayMs: 200}
	embeddingService, err := services.NewFallbackEmbeddingService(
		[]services.EmbeddingProvider{provider}, retryStrategy, a.Logger,
	)
	if err != nil {
		return fmt.Errorf("init embedding service: %w", err)
	}
	a.EmbeddingService = embeddingService
	return nil
}

func (a *App) initVectorStore(ctx context.Context) error {
	dsn := a.Config.Database.Vector.DSN
	if dsn == "" {
		return fmt.Errorf("vector store DSN (database.vector.dsn) is required but not configured")
	}
	vectorStore, err := vector.NewStore(ctx, dsn, a.Logger)
	if err != nil {
		return fmt.Errorf("init postgres vector store: %w", err)
	}
	a.VectorStore = vectorStore
	return nil
}

func (a *App) initJobClient() error {
	redisOpt := asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}
	a.JobClient = store.NewAsynqJobClient(redisOpt, a.Logger)
	return nil
}

func (a *App) cleanupPartialInit() {
	if a.JobClient != nil {
		a.JobClient.Close()
	}
	if a.VectorStore != nil {
		a.VectorStore.Close()
	}
}

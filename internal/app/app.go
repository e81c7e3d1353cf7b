package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/field_sync/internal/api"
	"github.com/shenikar/field_sync/internal/catalog"
	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/internal/engine"
	"github.com/shenikar/field_sync/internal/geocode"
	v1 "github.com/shenikar/field_sync/internal/handler/http/v1"
	"github.com/shenikar/field_sync/internal/network"
	"github.com/shenikar/field_sync/internal/notify"
	"github.com/shenikar/field_sync/internal/repository"
	"github.com/shenikar/field_sync/internal/service"
	"github.com/shenikar/field_sync/internal/storage"
	"github.com/shenikar/field_sync/internal/upload"
	"github.com/shenikar/field_sync/internal/webhook"
	redisclient "github.com/shenikar/field_sync/pkg/redis"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

// Options - параметры сборки приложения
type Options struct {
	// AssumeOnline отключает проверку сети: считается, что сеть есть всегда
	AssumeOnline bool
}

// App связывает хранилище, очередь, движок синхронизации и HTTP слой
type App struct {
	cfg    *config.Config
	logger *logrus.Logger

	store       storage.Store
	redisClient *redis.Client
	bus         *notify.Bus

	network engine.Connectivity
	monitor *network.ProbeMonitor
	worker  *webhook.Worker

	Queue   service.QueueService
	Engine  *engine.Engine
	Catalog *catalog.Catalog
	Handler *v1.Handler
}

// New собирает приложение. Миграции должны быть применены до вызова (см. storage.Migrate).
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger, opts Options) (*App, error) {
	a := &App{cfg: cfg, logger: logger, bus: notify.NewBus()}

	if cfg.StorageDriver == "redis" || cfg.WebhookURL != "" {
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		switch {
		case err == nil:
			a.redisClient = client
			logger.Info("Successfully connected to Redis")
		case cfg.StorageDriver == "redis":
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		default:
			logger.WithError(err).Warn("Redis is unavailable, webhook delivery disabled")
		}
	}

	store, err := storage.Open(ctx, cfg, a.redisClient)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	a.store = store
	logger.WithField("driver", cfg.StorageDriver).Info("Storage opened")

	if opts.AssumeOnline {
		a.network = network.NewStatic(true)
	} else {
		a.monitor = network.NewProbeMonitor(cfg.NetworkProbeURL, cfg.NetworkProbeInterval, cfg.NetworkProbeTimeout, logger)
		a.network = a.monitor
	}

	queueRepo := repository.NewQueueRepository(store)
	occurrences := repository.NewOccurrenceCache(store)
	lists := repository.NewCacheRepository[json.RawMessage](store)

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.APITimeout)
	geocoder := geocode.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.GeocodeTimeout)
	uploader := upload.NewCloudinaryUploader(cfg.UploadBaseURL, cfg.UploadCloudName, cfg.UploadPreset, cfg.UploadTimeout)

	a.Catalog = catalog.New(apiClient, lists, occurrences, a.network, logger)

	deps := engine.Deps{
		Queue:     queueRepo,
		Cache:     occurrences,
		Notifier:  a.bus,
		Geocoder:  geocoder,
		Uploader:  uploader,
		Submitter: apiClient,
		Network:   a.network,
	}
	if a.redisClient != nil && cfg.WebhookURL != "" {
		outbox := webhook.NewRedisOutbox(a.redisClient)
		deps.Events = webhook.NewPublisher(outbox)
		a.worker = webhook.NewWorker(outbox, logger, cfg)
	}

	a.Engine = engine.New(deps, engine.Options{
		Region:   cfg.GeocodeRegion,
		Interval: cfg.SyncInterval,
		Yield:    cfg.SyncYield,
	}, logger)

	a.Queue = service.NewQueueService(queueRepo, occurrences, a.bus, a.Catalog, a.Engine, logger)
	a.Handler = v1.NewHandler(a.Queue, a.Engine, a.Catalog, logger, cfg)

	return a, nil
}

// Router возвращает gin роутер с API v1 и Swagger UI
func (a *App) Router() *gin.Engine {
	router := gin.Default()
	apiV1 := router.Group("/api/v1")
	a.Handler.RegisterRoutes(apiV1)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// RunBackground запускает монитор сети, фоновую синхронизацию и доставку вебхуков.
// Возвращает управление после отмены ctx и остановки всех воркеров.
func (a *App) RunBackground(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if a.monitor != nil {
		g.Go(func() error {
			a.monitor.Run(ctx)
			return nil
		})
	}
	g.Go(func() error {
		a.Engine.Run(ctx)
		return nil
	})
	if a.worker != nil {
		g.Go(func() error {
			a.worker.Run(ctx)
			return nil
		})
	}

	return g.Wait()
}

// Close освобождает хранилище, шину и клиент Redis
func (a *App) Close() error {
	var errs []error
	a.bus.Close()
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/service"
	"github.com/shenikar/field_sync/internal/upload"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// Geocoder ищет координаты по адресу
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]models.Coordinates, error)
}

// Submitter отправляет записи и дочерние сущности в удаленный API
type Submitter interface {
	CreateOccurrence(ctx context.Context, o models.Occurrence) (models.Occurrence, error)
	UpdateOccurrence(ctx context.Context, id int64, o models.Occurrence) error
	CreateVictim(ctx context.Context, v models.Victim) (int64, error)
	AddTeamMember(ctx context.Context, occurrenceID, userID int64) error
}

// Connectivity сообщает о доступности сети
type Connectivity interface {
	IsConnected(ctx context.Context) bool
	Subscribe() (<-chan bool, func())
}

// EventPublisher публикует исходы синхронизации
type EventPublisher interface {
	Publish(ctx context.Context, event models.SyncEvent) error
}

// Notifier рассылает очередь и признак синхронизации
type Notifier interface {
	PublishQueue(queue []models.QueuedAction)
	SetProcessing(processing bool)
	Processing() bool
}

// Deps - зависимости движка. Events может быть nil.
type Deps struct {
	Queue     service.ActionQueue
	Cache     service.OccurrenceCache
	Notifier  Notifier
	Geocoder  Geocoder
	Uploader  upload.Uploader
	Submitter Submitter
	Network   Connectivity
	Events    EventPublisher
}

// Options - параметры движка
type Options struct {
	// Region дописывается к адресу при геокодировании
	Region string
	// Interval - период фоновой синхронизации
	Interval time.Duration
	// Yield - пауза между тяжелыми шагами попытки
	Yield time.Duration
}

// Engine отправляет очередь операций в удаленный API строго по порядку
type Engine struct {
	queue     service.ActionQueue
	cache     service.OccurrenceCache
	notifier  Notifier
	geocoder  Geocoder
	uploads   *upload.Pipeline
	submitter Submitter
	network   Connectivity
	events    EventPublisher
	opts      Options
	logger    *logrus.Logger
	now       func() time.Time

	running   atomic.Bool
	attemptMu sync.Mutex
	triggers  chan struct{}

	busyMu sync.Mutex
	busy   int

	statusMu  sync.Mutex
	lastDrain *time.Time
	lastError string
}

var (
	_ service.SyncController = (*Engine)(nil)
	_ service.DrainTrigger   = (*Engine)(nil)
)

func New(deps Deps, opts Options, logger *logrus.Logger) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = 20 * time.Second
	}
	return &Engine{
		queue:     deps.Queue,
		cache:     deps.Cache,
		notifier:  deps.Notifier,
		geocoder:  deps.Geocoder,
		uploads:   upload.NewPipeline(deps.Uploader, opts.Yield, logger),
		submitter: deps.Submitter,
		network:   deps.Network,
		events:    deps.Events,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
		triggers:  make(chan struct{}, 1),
	}
}

// Drain отправляет очередь по порядку и останавливается на первой неудаче.
// Одновременно выполняется не больше одного прохода: повторный вызов возвращает
// отчет с Started=false.
func (e *Engine) Drain(ctx context.Context) (models.DrainReport, error) {
	log := e.logger.WithFields(logrus.Fields{
		"component": "engine",
		"method":    "Drain",
	})

	if !e.running.CompareAndSwap(false, true) {
		log.Debug("Drain is already running, skipping")
		return models.DrainReport{Reason: models.DrainSkippedBusy}, nil
	}
	defer e.running.Store(false)

	e.beginWork()
	defer e.endWork()

	if !e.network.IsConnected(ctx) {
		log.Debug("Network is unavailable, skipping drain")
		return models.DrainReport{Reason: models.DrainSkippedOffline}, nil
	}

	queue, err := e.queue.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read queue")
		return models.DrainReport{}, fmt.Errorf("engine: could not read queue: %w", err)
	}
	if len(queue) == 0 {
		return models.DrainReport{Reason: models.DrainSkippedEmpty}, nil
	}

	report := models.DrainReport{Started: true}
	for _, item := range queue {
		if ctx.Err() != nil {
			break
		}
		err := e.process(ctx, item.ID)
		if errors.Is(err, models.ErrActionNotFound) {
			// Операцию удалили или отправили вручную во время прохода
			continue
		}
		if err != nil {
			report.FailedID = item.ID
			report.Error = err.Error()
			report.Code = models.ErrorCode(err)
			break
		}
		report.Synced++
	}

	if remaining, err := e.queue.List(ctx); err == nil {
		report.Remaining = len(remaining)
	}
	e.recordDrain(report)

	log.WithFields(logrus.Fields{
		"synced":    report.Synced,
		"failed_id": report.FailedID,
		"remaining": report.Remaining,
	}).Info("Drain finished")
	return report, nil
}

// SendItem отправляет одну операцию вне очереди. Ошибка - *models.SyncError
// с видом неудачи или ErrActionNotFound.
func (e *Engine) SendItem(ctx context.Context, id string) error {
	e.beginWork()
	defer e.endWork()

	err := e.process(ctx, id)
	if err != nil && !errors.Is(err, models.ErrActionNotFound) {
		e.statusMu.Lock()
		e.lastError = err.Error()
		e.statusMu.Unlock()
	}
	return err
}

// TriggerDrain запрашивает проход в фоне без ожидания
func (e *Engine) TriggerDrain() {
	select {
	case e.triggers <- struct{}{}:
	default:
	}
}

// Run выполняет проходы по таймеру, при появлении сети и по запросу до отмены ctx
func (e *Engine) Run(ctx context.Context) {
	e.logger.WithField("interval", e.opts.Interval).Info("Starting sync engine...")

	online, unsubscribe := e.network.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(e.opts.Interval)
	defer ticker.Stop()

	e.runDrain(ctx, "startup")
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Stopping sync engine.")
			return
		case <-ticker.C:
			e.runDrain(ctx, "timer")
		case connected := <-online:
			if connected {
				e.runDrain(ctx, "network")
			}
		case <-e.triggers:
			e.runDrain(ctx, "trigger")
		}
	}
}

// Status возвращает состояние синхронизации
func (e *Engine) Status(ctx context.Context) models.SyncStatus {
	status := models.SyncStatus{
		Online:     e.network.IsConnected(ctx),
		Processing: e.notifier.Processing(),
	}
	if queue, err := e.queue.List(ctx); err == nil {
		status.Pending = len(queue)
	}

	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	if e.lastDrain != nil {
		t := *e.lastDrain
		status.LastDrain = &t
	}
	status.LastError = e.lastError
	return status
}

func (e *Engine) runDrain(ctx context.Context, reason string) {
	report, err := e.Drain(ctx)
	log := e.logger.WithFields(logrus.Fields{
		"component": "engine",
		"reason":    reason,
	})
	if err != nil {
		log.WithError(err).Error("Drain failed")
		return
	}
	if !report.Started {
		log.WithField("skipped", report.Reason).Debug("Drain skipped")
	}
}

// process выполняет попытку отправки одной операции. Попытки не пересекаются.
func (e *Engine) process(ctx context.Context, id string) error {
	e.attemptMu.Lock()
	defer e.attemptMu.Unlock()

	action, err := e.queue.Get(ctx, id)
	if err != nil {
		return err
	}

	progress, err := e.attemptSend(ctx, *action)
	if err != nil {
		syncErr := models.NewSyncError(action.ID, err)
		e.recordFailure(ctx, *action, progress, syncErr)
		return syncErr
	}
	return nil
}

func (e *Engine) beginWork() {
	e.busyMu.Lock()
	defer e.busyMu.Unlock()
	e.busy++
	if e.busy == 1 {
		e.notifier.SetProcessing(true)
	}
}

func (e *Engine) endWork() {
	e.busyMu.Lock()
	defer e.busyMu.Unlock()
	e.busy--
	if e.busy == 0 {
		e.notifier.SetProcessing(false)
	}
}

func (e *Engine) recordDrain(report models.DrainReport) {
	now := e.now().UTC()

	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.lastDrain = &now
	e.lastError = report.Error
}

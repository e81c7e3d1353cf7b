package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shenikar/field_sync/internal/api"
	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/repository"
	"github.com/shenikar/field_sync/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// Справочные сущности
const (
	EntityUsers       = "users"
	EntityVehicles    = "vehicles"
	EntityCategories  = "categories"
	EntityGroups      = "groups"
	EntitySubgroups   = "subgroups"
	EntityUnits       = "units"
	EntityInjuryTypes = "injury_types"
	// EntityOccurrences - только в RefreshReport, читается через OccurrenceCache
	EntityOccurrences = "occurrences"
)

var paths = map[string]string{
	EntityUsers:       api.PathUsers,
	EntityVehicles:    api.PathVehicles,
	EntityCategories:  api.PathCategories,
	EntityGroups:      api.PathGroups,
	EntitySubgroups:   api.PathSubgroups,
	EntityUnits:       api.PathUnits,
	EntityInjuryTypes: api.PathInjuries,
}

const fetchLimit = 4

// Key возвращает ключ кеша сущности
func Key(entity string) string {
	return "cache:" + entity + "_v1"
}

// Entities возвращает имена справочных сущностей в стабильном порядке
func Entities() []string {
	out := make([]string, 0, len(paths))
	for entity := range paths {
		out = append(out, entity)
	}
	sort.Strings(out)
	return out
}

// Source загружает справочники и ocorrências пользователя
type Source interface {
	List(ctx context.Context, path string) ([]json.RawMessage, error)
	UserOccurrences(ctx context.Context, userID int64) ([]models.Occurrence, error)
}

// Connectivity сообщает о доступности сети
type Connectivity interface {
	IsConnected(ctx context.Context) bool
}

// Catalog - кеш справочников: читается локально, обновляется из сети
type Catalog struct {
	source      Source
	lists       *repository.CacheRepository[json.RawMessage]
	occurrences service.OccurrenceCache
	network     Connectivity
	logger      *logrus.Logger
}

var (
	_ service.CatalogService = (*Catalog)(nil)
	_ service.NameResolver   = (*Catalog)(nil)
)

func New(source Source, lists *repository.CacheRepository[json.RawMessage], occurrences service.OccurrenceCache, network Connectivity, logger *logrus.Logger) *Catalog {
	return &Catalog{
		source:      source,
		lists:       lists,
		occurrences: occurrences,
		network:     network,
		logger:      logger,
	}
}

// Refresh загружает все справочники и ocorrências пользователя параллельно.
// Ошибка одной сущности не мешает остальным. Без сети обновление пропускается.
func (c *Catalog) Refresh(ctx context.Context, userID int64) (models.RefreshReport, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "catalog",
		"method":    "Refresh",
		"user_id":   userID,
	})

	if !c.network.IsConnected(ctx) {
		log.Debug("Network is unavailable, skipping catalog refresh")
		return models.RefreshReport{Skipped: true}, nil
	}

	var (
		mu     sync.Mutex
		report = models.RefreshReport{Updated: []string{}}
	)
	record := func(entity string, written bool, err error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case err != nil:
			log.WithError(err).WithField("entity", entity).Warn("Failed to refresh catalog entity")
			report.Failed = append(report.Failed, entity)
		case written:
			report.Updated = append(report.Updated, entity)
		}
	}

	var g errgroup.Group
	g.SetLimit(fetchLimit)
	for _, entity := range Entities() {
		g.Go(func() error {
			written, err := c.refreshEntity(ctx, entity)
			record(entity, written, err)
			return nil
		})
	}
	if userID != 0 {
		g.Go(func() error {
			written, err := c.refreshOccurrences(ctx, userID)
			record(EntityOccurrences, written, err)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("catalog: refresh interrupted: %w", err)
	}

	sort.Strings(report.Updated)
	sort.Strings(report.Failed)
	log.WithFields(logrus.Fields{
		"updated": len(report.Updated),
		"failed":  len(report.Failed),
	}).Info("Catalog refreshed")
	return report, nil
}

func (c *Catalog) refreshEntity(ctx context.Context, entity string) (bool, error) {
	items, err := c.source.List(ctx, paths[entity])
	if err != nil {
		return false, err
	}
	return c.lists.Refresh(ctx, Key(entity), items)
}

func (c *Catalog) refreshOccurrences(ctx context.Context, userID int64) (bool, error) {
	fresh, err := c.source.UserOccurrences(ctx, userID)
	if err != nil {
		return false, err
	}
	return c.occurrences.ReplaceFromServer(ctx, userID, fresh)
}

// Items возвращает закешированный справочник. Пустой список, если кеш еще не заполнен.
func (c *Catalog) Items(ctx context.Context, entity string) ([]json.RawMessage, error) {
	if _, ok := paths[entity]; !ok {
		return nil, fmt.Errorf("catalog: %q: %w", entity, models.ErrUnknownEntity)
	}
	items, err := c.lists.List(ctx, Key(entity))
	if err != nil {
		return nil, fmt.Errorf("catalog: could not read %s: %w", entity, err)
	}
	return items, nil
}

// Name ищет nome элемента справочника по id. Пустая строка, если элемент неизвестен.
func (c *Catalog) Name(ctx context.Context, entity string, id int64) string {
	items, err := c.Items(ctx, entity)
	if err != nil {
		c.logger.WithError(err).WithField("entity", entity).Debug("Catalog lookup failed")
		return ""
	}
	want := strconv.FormatInt(id, 10)
	for _, raw := range items {
		var item struct {
			ID   json.RawMessage `json:"id"`
			Nome string          `json:"nome"`
		}
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		if strings.Trim(string(item.ID), `"`) == want {
			return item.Nome
		}
	}
	return ""
}

func (c *Catalog) CategoryName(ctx context.Context, id int64) string {
	return c.Name(ctx, EntityCategories, id)
}

func (c *Catalog) GroupName(ctx context.Context, id int64) string {
	return c.Name(ctx, EntityGroups, id)
}

func (c *Catalog) SubgroupName(ctx context.Context, id int64) string {
	return c.Name(ctx, EntitySubgroups, id)
}

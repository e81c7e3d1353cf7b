package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/storage"
)

// GenericOccurrencesKey - общий кеш ocorrências
const GenericOccurrencesKey = "cache:occurrences_v1"

// UserOccurrencesKey возвращает ключ кеша ocorrências пользователя
func UserOccurrencesKey(userID int64) string {
	return fmt.Sprintf("cache:occurrences_user_v1_%d", userID)
}

// OccurrenceCache - локальные кеши ocorrências: общий и по пользователям
type OccurrenceCache struct {
	lists *CacheRepository[models.Occurrence]
}

func NewOccurrenceCache(store storage.Store) *OccurrenceCache {
	return &OccurrenceCache{lists: NewCacheRepository[models.Occurrence](store)}
}

// List возвращает кеш пользователя или общий при userID == 0
func (c *OccurrenceCache) List(ctx context.Context, userID int64) ([]models.Occurrence, error) {
	return c.lists.List(ctx, c.key(userID))
}

// InsertTemporary добавляет временную запись в начало общего кеша и кеша владельца.
// Если запись с тем же id или номером уже есть, кеш не меняется.
func (c *OccurrenceCache) InsertTemporary(ctx context.Context, tmp models.Occurrence) error {
	insert := func(data []models.Occurrence) ([]models.Occurrence, bool) {
		for _, o := range data {
			if o.ID == tmp.ID || (tmp.Number != "" && o.Number == tmp.Number) {
				return data, false
			}
		}
		return append([]models.Occurrence{tmp}, data...), true
	}

	for _, key := range c.keys(tmp.OwnerID()) {
		if _, err := c.lists.Update(ctx, key, insert); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTemporary удаляет временную запись из общего кеша и кеша владельца
func (c *OccurrenceCache) RemoveTemporary(ctx context.Context, tempID, userID int64) error {
	remove := func(data []models.Occurrence) ([]models.Occurrence, bool) {
		out := make([]models.Occurrence, 0, len(data))
		for _, o := range data {
			if o.ID != tempID {
				out = append(out, o)
			}
		}
		return out, len(out) != len(data)
	}

	for _, key := range c.keys(userID) {
		if _, err := c.lists.Update(ctx, key, remove); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile заменяет временную запись tempID серверной записью в общем кеше и кеше владельца.
// Поиск идет по id; если по id ничего нет - по номеру, но только среди временных записей.
// Если замена не найдена, серверная запись добавляется в начало.
func (c *OccurrenceCache) Reconcile(ctx context.Context, tempID int64, number string, userID int64, server models.Occurrence) error {
	for _, key := range c.keys(userID) {
		if _, err := c.lists.Update(ctx, key, func(data []models.Occurrence) ([]models.Occurrence, bool) {
			return reconcileList(data, tempID, number, server), true
		}); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceFromServer записывает свежий список. Временные записи, которые еще есть
// в кеше, остаются в начале списка. Пустой ответ не стирает непустой кеш.
func (c *OccurrenceCache) ReplaceFromServer(ctx context.Context, userID int64, fresh []models.Occurrence) (bool, error) {
	return c.lists.Update(ctx, c.key(userID), func(current []models.Occurrence) ([]models.Occurrence, bool) {
		if len(fresh) == 0 && len(current) > 0 {
			return current, false
		}
		merged := make([]models.Occurrence, 0, len(fresh))
		for _, o := range current {
			if o.IsTemporary() {
				merged = append(merged, o)
			}
		}
		merged = append(merged, fresh...)
		return merged, !sameJSON(current, merged)
	})
}

func (c *OccurrenceCache) key(userID int64) string {
	if userID == 0 {
		return GenericOccurrencesKey
	}
	return UserOccurrencesKey(userID)
}

func (c *OccurrenceCache) keys(userID int64) []string {
	if userID == 0 {
		return []string{GenericOccurrencesKey}
	}
	return []string{UserOccurrencesKey(userID), GenericOccurrencesKey}
}

func reconcileList(data []models.Occurrence, tempID int64, number string, server models.Occurrence) []models.Occurrence {
	match := -1
	for i, o := range data {
		if o.ID == tempID {
			match = i
			break
		}
	}
	if match < 0 && number != "" {
		for i, o := range data {
			if o.IsTemporary() && o.Number == number {
				match = i
				break
			}
		}
	}

	out := make([]models.Occurrence, 0, len(data)+1)
	if match < 0 {
		out = append(out, server)
	}
	for i, o := range data {
		switch {
		case i == match:
			out = append(out, server)
		case o.ID == tempID:
			// дубликаты временной записи
		case o.ID == server.ID && server.ID != 0:
			// серверная запись уже пришла при обновлении кеша
		default:
			out = append(out, o)
		}
	}
	return out
}

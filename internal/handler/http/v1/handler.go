package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	queueService service.QueueService
	syncService  service.SyncController
	catalog      service.CatalogService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(queueService service.QueueService, syncService service.SyncController, catalog service.CatalogService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		queueService: queueService,
		syncService:  syncService,
		catalog:      catalog,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Enqueue an offline action
// @Description Validate and append a create or update action to the offline queue. Requires API key.
// @Tags Queue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param action body EnqueueRequest true "Action to enqueue"
// @Success 201 {object} EnqueueResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /queue [post]
func (h *Handler) enqueue(c *gin.Context) {
	var input EnqueueRequest
	log := h.logger.WithField("method", "enqueue")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: models.ErrorCode(models.ErrValidation)})
		return
	}

	id, err := h.queueService.Enqueue(c.Request.Context(), models.ActionKind(input.Type), input.Payload)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, EnqueueResponse{ID: id})
}

// @Summary List the offline queue
// @Description Get queued actions in FIFO order. Requires API key.
// @Tags Queue
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} QueueResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /queue [get]
func (h *Handler) listQueue(c *gin.Context) {
	log := h.logger.WithField("method", "listQueue")

	queue, err := h.queueService.List(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, QueueResponse{
		Items:      ModelsToActionResponses(queue),
		Total:      len(queue),
		Processing: h.syncService.Status(c.Request.Context()).Processing,
	})
}

// @Summary Get a queued action
// @Tags Queue
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse "Action not found"
// @Router /queue/{id} [get]
func (h *Handler) getAction(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getAction").WithField("id", id)

	action, err := h.queueService.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToActionResponse(*action))
}

// @Summary Edit a queued action
// @Description Replace the payload of a queued action. Resets retries. Requires API key.
// @Tags Queue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Param action body UpdateActionRequest true "New payload"
// @Success 200 "OK"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Action not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /queue/{id} [put]
func (h *Handler) updateAction(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAction").WithField("id", id)

	var input UpdateActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.queueService.Update(c.Request.Context(), id, input.Payload); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Remove a queued action
// @Description Delete an action from the queue and its temporary occurrence from caches. Requires API key.
// @Tags Queue
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Action not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /queue/{id} [delete]
func (h *Handler) removeAction(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "removeAction").WithField("id", id)

	if err := h.queueService.Remove(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Send a single queued action
// @Description Attempt to sync one action immediately, out of queue order. Requires API key.
// @Tags Sync
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Action not found"
// @Failure 502 {object} ErrorResponse "Attempt failed, action kept in queue"
// @Router /queue/{id}/send [post]
func (h *Handler) sendAction(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "sendAction").WithField("id", id)

	if err := h.syncService.SendItem(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Drain the offline queue
// @Description Send queued actions in order, stopping at the first failure. Requires API key.
// @Tags Sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DrainReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sync/drain [post]
func (h *Handler) drain(c *gin.Context) {
	log := h.logger.WithField("method", "drain")

	report, err := h.syncService.Drain(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get sync status
// @Tags Sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.SyncStatus
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sync/status [get]
func (h *Handler) syncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.Status(c.Request.Context()))
}

// @Summary List cached occurrences
// @Description Get the locally cached occurrences, including temporary ones awaiting sync. Requires API key.
// @Tags Occurrences
// @Produce json
// @Security ApiKeyAuth
// @Param userId query int false "User ID, generic cache when omitted"
// @Success 200 {array} models.Occurrence
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences [get]
func (h *Handler) listOccurrences(c *gin.Context) {
	log := h.logger.WithField("method", "listOccurrences")

	userID, ok := h.userIDParam(c, 0)
	if !ok {
		return
	}

	list, err := h.queueService.Occurrences(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get a cached catalog
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param entity path string true "users, vehicles, categories, groups, subgroups, units or injury_types"
// @Success 200 {object} CatalogResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown entity"
// @Router /catalog/{entity} [get]
func (h *Handler) getCatalog(c *gin.Context) {
	entity := c.Param("entity")
	log := h.logger.WithField("method", "getCatalog").WithField("entity", entity)

	items, err := h.catalog.Items(c.Request.Context(), entity)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CatalogResponse{Entity: entity, Items: items})
}

// @Summary Refresh reference catalogs
// @Description Refetch catalogs and the user's occurrences. Skipped when offline. Requires API key.
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param userId query int false "User whose occurrences are refreshed, SYNC_USER_ID by default"
// @Success 200 {object} models.RefreshReport
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /catalog/refresh [post]
func (h *Handler) refreshCatalog(c *gin.Context) {
	log := h.logger.WithField("method", "refreshCatalog")

	userID, ok := h.userIDParam(c, h.cfg.SyncUserID)
	if !ok {
		return
	}

	report, err := h.catalog.Refresh(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	status := h.syncService.Status(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"online":  status.Online,
		"pending": status.Pending,
	})
}

func (h *Handler) userIDParam(c *gin.Context, fallback int64) (int64, bool) {
	raw := c.Query("userId")
	if raw == "" {
		return fallback, true
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
		return 0, false
	}
	return userID, true
}

// writeError отображает ошибки сервисов в HTTP статусы
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		validationErr *models.ValidationError
		syncErr       *models.SyncError
	)
	code := models.ErrorCode(err)

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Code: code, Fields: validationErr.Fields})
	case errors.Is(err, models.ErrActionNotFound), errors.Is(err, models.ErrUnknownEntity):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Code: code})
	case errors.As(err, &syncErr):
		log.WithError(err).Warn("Sync attempt failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error(), Code: code})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

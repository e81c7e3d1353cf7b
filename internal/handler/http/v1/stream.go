package v1

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

const streamWriteTimeout = 5 * time.Second

// @Summary Stream queue changes
// @Description WebSocket stream. The current queue and processing flag are sent on connect, then every change. Requires API key.
// @Tags Queue
// @Security ApiKeyAuth
// @Success 101 {object} StreamEvent
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /queue/ws [get]
func (h *Handler) streamQueue(c *gin.Context) {
	log := h.logger.WithField("method", "streamQueue")

	queue, unsubscribeQueue, err := h.queueService.SubscribeQueue(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	defer unsubscribeQueue()
	processing, unsubscribeProcessing := h.queueService.SubscribeProcessing()
	defer unsubscribeProcessing()

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.CloseNow()
	log.Debug("Queue stream client connected")

	// Клиент ничего не присылает: CloseRead отменяет ctx при закрытии соединения
	ctx := conn.CloseRead(c.Request.Context())

	for {
		var event StreamEvent
		select {
		case <-ctx.Done():
			log.Debug("Queue stream client disconnected")
			return
		case q, ok := <-queue:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			event = StreamEvent{Type: StreamQueue, Queue: ModelsToActionResponses(q)}
		case p, ok := <-processing:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			event = StreamEvent{Type: StreamProcessing, Processing: &p}
		}

		writeCtx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
		err := wsjson.Write(writeCtx, conn, event)
		cancel()
		if err != nil {
			log.WithError(err).Debug("Failed to write stream event")
			return
		}
	}
}

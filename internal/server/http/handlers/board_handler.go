package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oshxona/resto/internal/board"
	"github.com/oshxona/resto/internal/bus"
)

// BoardHandler serves dashboard snapshots and the live event feed.
type BoardHandler struct {
	facade BoardFacade
}

// NewBoardHandler constructs BoardHandler.
func NewBoardHandler(facade BoardFacade) *BoardHandler {
	return &BoardHandler{facade: facade}
}

// Snapshot handles GET /api/staff/board.
func (h *BoardHandler) Snapshot(c *gin.Context) {
	view, ok := board.ParseView(c.DefaultQuery("view", string(board.ViewAdmin)))
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.BoardSnapshot(c.Request.Context(), view)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Events handles GET /api/staff/events as a server-sent event stream.
// Dashboards apply each event as an upsert by order id; a dropped event is
// recovered by refetching the snapshot, so the buffer may discard under
// backpressure.
func (h *BoardHandler) Events(c *gin.Context) {
	ch := make(chan bus.Event, 16)
	unsubscribe := h.facade.SubscribeEvents(func(ctx context.Context, ev bus.Event) {
		select {
		case ch <- ev:
		default:
		}
	})
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev := <-ch:
			c.SSEvent(string(ev.Type), ev.Order)
			return true
		}
	})
}

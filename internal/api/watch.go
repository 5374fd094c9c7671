package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultWatchInterval = 250 * time.Millisecond
	watchWriteTimeout    = 5 * time.Second
)

func newUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
		CheckOrigin:     func(r *http.Request) bool { return true }, // read-only debug feed
	}
}

// WatchSnapshots upgrades to a websocket and pushes the published view each
// time the frame counter moves, polling at the watch interval. Clients never
// send anything; a read error means they went away.
func (h *Handler) WatchSnapshots(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.Close()
	h.logger.Debug("Watcher connected", "remote", r.RemoteAddr)

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.watchInterval)
	defer ticker.Stop()

	var lastFrame uint64
	sent := false
	for {
		view := h.source.Current()
		if !sent || view.Frame != lastFrame {
			_ = conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
			if err := conn.WriteJSON(view); err != nil {
				h.logger.Debug("Watcher write failed", "error", err, "remote", r.RemoteAddr)
				return
			}
			lastFrame, sent = view.Frame, true
		}

		select {
		case <-gone:
			h.logger.Debug("Watcher disconnected", "remote", r.RemoteAddr)
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

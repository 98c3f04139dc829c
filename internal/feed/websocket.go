package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ashureev/console-gate/internal/auth"
	"github.com/coder/websocket"
)

const writeTimeout = 5 * time.Second

// WebSocketHandler serves the live console feed over a websocket.
type WebSocketHandler struct {
	gw    *auth.Gateway
	b     *Broadcaster
	isDev bool
}

// NewWebSocketHandler creates the feed endpoint handler. In
// development mode origin verification is skipped so a separate
// frontend dev server can connect.
func NewWebSocketHandler(gw *auth.Gateway, b *Broadcaster, isDev bool) *WebSocketHandler {
	if isDev {
		slog.Warn("Feed websocket origin verification disabled (development mode)")
	}
	return &WebSocketHandler{gw: gw, b: b, isDev: isDev}
}

// ServeHTTP upgrades the connection and streams console lines until
// the client disconnects. Browsers cannot set an Authorization header
// on a websocket dial, so the bearer token arrives as a query
// parameter and runs through the same authorization path.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, err := h.gw.Authorize(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	opts := &websocket.AcceptOptions{}
	if h.isDev {
		opts.InsecureSkipVerify = true
	}

	ws, err := websocket.Accept(w, r, opts)
	if err != nil {
		slog.Warn("Feed websocket accept failed", "error", err)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "feed closed"); closeErr != nil {
			slog.Debug("Failed to close feed websocket", "error", closeErr)
		}
	}()

	// The feed never reads application data, so CloseRead takes over
	// the read side: it keeps control frames (pings, close) processed
	// and cancels the context when the peer goes away. Without it an
	// idle subscriber's disconnect would sit unnoticed until the next
	// console line forced a failing write.
	ctx := ws.CloseRead(r.Context())

	lines, cancel := h.b.Subscribe()
	defer cancel()

	slog.Info("Feed subscriber connected", "principal", sess.Principal)

	for {
		select {
		case <-ctx.Done():
			return
		case line := <-lines:
			writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
			err := ws.Write(writeCtx, websocket.MessageText, []byte(line))
			cancelWrite()
			if err != nil {
				slog.Debug("Feed subscriber write failed, dropping", "error", err)
				return
			}
		}
	}
}

/*
ws.go - Live record change feed over WebSocket

PURPOSE:
  The dashboard keeps its lists fresh without polling: every append, patch,
  and delete on any collection is pushed to connected clients as a JSON
  event. The feed is one-way; the only client message handled is a ping.

AVAILABILITY:
  The feed requires the handler's store to carry the Subscribe capability
  (record.Watcher). On a plain store the endpoint answers 501 and clients
  fall back to polling.

SEE ALSO:
  - record/watch.go: The fan-out decorator providing Subscribe
*/
package api

import (
	"context"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/digimons/facility-engine/record"
)

// eventBuffer bounds how far a slow client may fall behind before events
// are dropped for it.
const eventBuffer = 64

// Watch upgrades to WebSocket and streams record change events.
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	watcher, ok := h.Store.(record.Watcher)
	if !ok {
		writeError(w, http.StatusNotImplemented, "Store does not support change feeds", nil)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("ws: accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	events := make(chan record.Event, eventBuffer)

	cancels := make([]func(), 0, len(record.Collections()))
	for _, c := range record.Collections() {
		cancel := watcher.Subscribe(c, func(ev record.Event) {
			select {
			case events <- ev:
			default: // slow client, drop rather than block the writer
			}
		})
		cancels = append(cancels, cancel)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	// Reader side only consumes control frames and detects disconnect.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if err := h.sendEvent(ctx, conn, ev); err != nil {
				return
			}
		case <-readDone:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) sendEvent(ctx context.Context, conn *websocket.Conn, ev record.Event) error {
	if err := wsjson.Write(ctx, conn, ev); err != nil {
		log.Printf("ws: write: %v", err)
		return err
	}
	return nil
}

package record

import (
	"context"
	"sync"
)

// =============================================================================
// WATCHED STORE - Adds change fan-out to any Store
// =============================================================================

// WatchedStore decorates a Store with the Watcher capability: every committed
// mutation is fanned out to subscribers. This lets push-less backends (the
// SQLite store) still feed the live dashboard channel.
type WatchedStore struct {
	Store

	mu     sync.RWMutex
	nextID int
	subs   map[Collection]map[int]func(Event)
}

func Watch(s Store) *WatchedStore {
	return &WatchedStore{
		Store: s,
		subs:  make(map[Collection]map[int]func(Event)),
	}
}

func (w *WatchedStore) Subscribe(c Collection, fn func(Event)) (cancel func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.subs[c] == nil {
		w.subs[c] = make(map[int]func(Event))
	}
	id := w.nextID
	w.nextID++
	w.subs[c][id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs[c], id)
	}
}

func (w *WatchedStore) Append(ctx context.Context, c Collection, env Envelope) (Envelope, error) {
	stored, err := w.Store.Append(ctx, c, env)
	if err != nil {
		return Envelope{}, err
	}
	w.publish(Event{Collection: c, Kind: EventAppended, Record: stored})
	return stored, nil
}

func (w *WatchedStore) Patch(ctx context.Context, c Collection, id string, fields Fields) error {
	if err := w.Store.Patch(ctx, c, id, fields); err != nil {
		return err
	}
	env, err := Find(ctx, w.Store, c, id)
	if err != nil {
		// The patch committed; a racing delete is the only way here.
		env = Envelope{ID: id}
	}
	w.publish(Event{Collection: c, Kind: EventPatched, Record: env})
	return nil
}

func (w *WatchedStore) Delete(ctx context.Context, c Collection, id string) error {
	if err := w.Store.Delete(ctx, c, id); err != nil {
		return err
	}
	w.publish(Event{Collection: c, Kind: EventDeleted, Record: Envelope{ID: id}})
	return nil
}

func (w *WatchedStore) publish(ev Event) {
	w.mu.RLock()
	fns := make([]func(Event), 0, len(w.subs[ev.Collection]))
	for _, fn := range w.subs[ev.Collection] {
		fns = append(fns, fn)
	}
	w.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

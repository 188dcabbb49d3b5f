package app

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// UnlockRegistry tracks which collectible card titles have been unlocked.
// The set is loaded once at startup, held in memory for the process
// lifetime, and the full set is persisted on every insertion. Persistence is
// best effort: no retry, no batching, failures are logged and reported only
// through the result channel.
type UnlockRegistry struct {
	store KeyValueStore

	mu     sync.RWMutex
	titles []string
	index  map[string]struct{}
}

func NewUnlockRegistry(store KeyValueStore) *UnlockRegistry {
	return &UnlockRegistry{
		store: store,
		index: make(map[string]struct{}),
	}
}

// Load reads the persisted title set. Missing or malformed data initializes
// an empty registry; load failures are never surfaced to the caller.
func (r *UnlockRegistry) Load(ctx context.Context) {
	raw, err := r.store.Get(ctx, keyUnlockedTitles)
	if err != nil {
		logrus.WithError(err).Warn("unlock registry: load failed, starting empty")
		return
	}
	if raw == "" {
		return
	}
	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		logrus.WithError(err).Warn("unlock registry: malformed persisted titles, starting empty")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = r.titles[:0]
	r.index = make(map[string]struct{}, len(titles))
	for _, title := range titles {
		if _, ok := r.index[title]; ok {
			continue
		}
		r.index[title] = struct{}{}
		r.titles = append(r.titles, title)
	}
}

// Unlock inserts the title and persists the updated set. It is idempotent:
// an already-unlocked title is a no-op and triggers no store write. The
// returned channel reports the persistence outcome and yields nil once the
// write finishes; callers that don't care may drop it.
func (r *UnlockRegistry) Unlock(title string) <-chan error {
	done := make(chan error, 1)

	r.mu.Lock()
	if _, ok := r.index[title]; ok {
		r.mu.Unlock()
		close(done)
		return done
	}
	r.index[title] = struct{}{}
	r.titles = append(r.titles, title)
	payload, _ := json.Marshal(r.titles)
	r.mu.Unlock()

	go func() {
		defer close(done)
		if err := r.store.Set(context.Background(), keyUnlockedTitles, string(payload)); err != nil {
			logrus.WithError(err).WithField("title", title).Warn("unlock registry: persist failed")
			done <- err
		}
	}()
	return done
}

// IsUnlocked reports whether a title has been unlocked.
func (r *UnlockRegistry) IsUnlocked(title string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[title]
	return ok
}

// Titles returns the unlocked titles in insertion order.
func (r *UnlockRegistry) Titles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.titles))
	copy(out, r.titles)
	return out
}

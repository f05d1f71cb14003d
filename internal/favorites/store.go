// Package favorites holds the user's favorited films in an observable
// store persisted to the local key-value backend under an obfuscated
// encoding.
package favorites

import (
	"context"
	"log/slog"
	"sync"

	"movie-search-service/internal/models"
)

// StorageKey is the fixed key the serialized favorites live under.
const StorageKey = "favorites"

// KV is the persistence backend. A nil KV is valid; the store then
// runs purely in memory.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store is the favorites state container. Mutations are idempotent by
// film id, preserve insertion order, notify subscribers and persist
// the full set. Persistence failures are swallowed so the in-memory
// state stays usable with storage unavailable or corrupt.
type Store struct {
	kv KV

	mu        sync.Mutex
	movies    []models.Movie
	subs      map[int]func()
	nextSubID int
}

// NewStore creates the store, seeding initial state from the backend.
// A missing key, an undecodable value or a nil backend all yield an
// empty initial state rather than an error.
func NewStore(ctx context.Context, kv KV) *Store {
	s := &Store{
		kv:   kv,
		subs: make(map[int]func()),
	}

	if kv == nil {
		return s
	}
	stored, err := kv.Get(ctx, StorageKey)
	if err != nil || stored == "" {
		return s
	}
	movies, err := Decode(stored)
	if err != nil {
		slog.Warn("ignoring corrupt stored favorites", "error", err)
		return s
	}
	s.movies = movies
	return s
}

// Add appends the film unless one with the same id is already present.
func (s *Store) Add(ctx context.Context, movie models.Movie) {
	s.mu.Lock()
	for _, m := range s.movies {
		if m.ID == movie.ID {
			s.mu.Unlock()
			return
		}
	}
	s.movies = append(s.movies, movie)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify()
}

// Remove deletes the film with the given id; absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	idx := -1
	for i, m := range s.movies {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.movies = append(s.movies[:idx], s.movies[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify()
}

// All returns the favorites in insertion order.
func (s *Store) All() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Contains reports whether the film id is favorited.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Subscribe registers a callback invoked after every mutation and
// returns the matching unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) snapshotLocked() []models.Movie {
	out := make([]models.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

func (s *Store) persist(ctx context.Context, snapshot []models.Movie) {
	if s.kv == nil {
		return
	}
	encoded, err := Encode(snapshot)
	if err != nil {
		slog.Warn("failed to encode favorites", "error", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, encoded); err != nil {
		slog.Warn("failed to persist favorites", "error", err)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

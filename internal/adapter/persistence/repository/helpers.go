package repository

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// listDocument is a JSON array of T stored under a single key.
//
// Every read-modify-write goes through mu, so writers in one process never
// clobber each other. Separate processes sharing a backend still race with
// last-write-wins.
type listDocument[T any] struct {
	kv   interfaces.IKeyValueStore
	key  string
	idOf func(T) string
	mu   sync.Mutex
}

func newListDocument[T any](kv interfaces.IKeyValueStore, key string, idOf func(T) string) *listDocument[T] {
	return &listDocument[T]{kv: kv, key: key, idOf: idOf}
}

// load fails open: a stored value that does not decode is treated as an empty
// list. Backend errors are returned.
func (d *listDocument[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := d.kv.Get(ctx, d.key)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logrus.Warnf("[store][repository] undecodable list treated as empty key=%s err=%v", d.key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (d *listDocument[T]) save(ctx context.Context, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return d.kv.Set(ctx, d.key, string(b))
}

func (d *listDocument[T]) find(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := d.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if d.idOf(it) == id {
			return it, nil
		}
	}
	return zero, nil
}

func (d *listDocument[T]) prepend(ctx context.Context, item T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.load(ctx)
	if err != nil {
		return err
	}
	items = append([]T{item}, items...)
	return d.save(ctx, items)
}

// mutate applies fn to the element with the given id and persists the result.
// An unknown id returns the zero value without writing; an fn error aborts
// without writing.
func (d *listDocument[T]) mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var zero T
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.load(ctx)
	if err != nil {
		return zero, err
	}
	idx := -1
	for i, it := range items {
		if d.idOf(it) == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, nil
	}

	updated := items[idx]
	if err := fn(&updated); err != nil {
		return zero, err
	}
	items[idx] = updated
	if err := d.save(ctx, items); err != nil {
		return zero, err
	}
	return updated, nil
}

func (d *listDocument[T]) remove(ctx context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.load(ctx)
	if err != nil {
		return false, err
	}
	kept := items[:0]
	removed := false
	for _, it := range items {
		if d.idOf(it) == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false, nil
	}
	return true, d.save(ctx, kept)
}

// newID returns a time-ordered UUIDv7, falling back to v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

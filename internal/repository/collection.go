package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"launchpad/internal/logger"
	"launchpad/internal/storage"

	"github.com/google/uuid"
)

var errCorruptCollection = errors.New("corrupt collection")

// record is implemented by the pointer types of stored entities.
type record[T any] interface {
	*T
	Identifier() string
	Stamp(id string, at time.Time)
}

// collection stores every record of one type as a single JSON array under
// one key, in insertion order.
type collection[T any, PT record[T]] struct {
	store storage.Store
	key   string
	now   func() time.Time
	newID func() string

	// serializes read-modify-write in Add
	mu sync.Mutex
}

func newCollection[T any, PT record[T]](store storage.Store, key string) *collection[T, PT] {
	return &collection[T, PT]{
		store: store,
		key:   key,
		now: func() time.Time {
			return time.Now().UTC()
		},
		newID: func() string {
			return uuid.New().String()
		},
	}
}

// List never fails. A missing key, an unreadable store or corrupt JSON all
// come back as an empty slice.
func (c *collection[T, PT]) List(ctx context.Context) []T {
	out, err := c.load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to load %s, treating as empty: %v", c.key, err)
		return []T{}
	}
	return out
}

func (c *collection[T, PT]) load(ctx context.Context) ([]T, error) {
	bytes, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || len(bytes) == 0 {
		return []T{}, nil
	}
	out := []T{}
	if err := json.Unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w: %w", c.key, errCorruptCollection, err)
	}
	if out == nil {
		// stored as null
		out = []T{}
	}
	return out, nil
}

// Add stamps the record with an ID and creation time when they are unset,
// appends it and writes back the whole collection. A store read failure
// aborts the write; corrupt JSON is overwritten.
func (c *collection[T, PT]) Add(ctx context.Context, in T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	PT(&in).Stamp(c.newID(), c.now())

	existing, err := c.load(ctx)
	if errors.Is(err, errCorruptCollection) {
		logger.FromContext(ctx).Warnf("overwriting corrupt %s: %v", c.key, err)
		existing = []T{}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	existing = append(existing, in)

	bytes, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, bytes); err != nil {
		return nil, fmt.Errorf("failed to persist %s: %w", c.key, err)
	}

	return &in, nil
}

func (c *collection[T, PT]) GetByID(ctx context.Context, id string) (*T, bool) {
	all := c.List(ctx)
	for i := range all {
		if PT(&all[i]).Identifier() == id {
			return &all[i], true
		}
	}
	return nil, false
}

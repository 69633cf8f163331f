package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/lrucache/pkg/cache"
	"github.com/dmitrymomot/lrucache/pkg/logger"
	"github.com/dmitrymomot/lrucache/pkg/requestid"
)

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

var errUserNotFound = errors.New("user not found")

// userDirectory is a stand-in for a slow backing store.
type userDirectory struct {
	users   map[string]*user
	lookups int
}

func newUserDirectory() *userDirectory {
	return &userDirectory{users: map[string]*user{
		"user-123": {ID: 123, Name: "John Doe", Role: "admin"},
		"user-456": {ID: 456, Name: "Jane Smith", Role: "user"},
	}}
}

func (d *userDirectory) find(_ context.Context, id string) (any, error) {
	d.lookups++
	u, ok := d.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUserNotFound, id)
	}
	return u, nil
}

type scenario struct {
	name string
	run  func(ctx context.Context, log *slog.Logger) error
}

// run walks through every scenario against a freshly reset shared cache.
// The first scenario sizes the shared cache from cfg.
func run(ctx context.Context, log *slog.Logger, cfg cache.Config) error {
	scenarios := []scenario{
		{name: "basic usage", run: func(ctx context.Context, log *slog.Logger) error {
			return basicUsage(ctx, log, cfg)
		}},
		{name: "lru eviction", run: lruEviction},
		{name: "shared instance", run: sharedInstance},
		{name: "read-through caching", run: readThrough},
		{name: "error handling", run: errorHandling},
		{name: "resize", run: resize},
		{name: "remove and clear", run: removeAndClear},
	}

	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}

		cache.ResetShared()
		if err := s.run(ctx, log.With(logger.Component(s.name))); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	cache.ResetShared()
	return nil
}

func sharedCache(log *slog.Logger, capacity int) (*cache.LRUCache[any], error) {
	c, err := cache.SharedWithCapacity(capacity)
	if err != nil {
		return nil, err
	}
	c.SetEvictCallback(func(key string, _ any) {
		log.Debug("evicted", logger.Key(key))
	})
	return c, nil
}

func basicUsage(ctx context.Context, log *slog.Logger, cfg cache.Config) error {
	c, err := cache.SharedFromConfig(cfg)
	if err != nil {
		return err
	}

	users := []*user{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}
	for _, u := range users {
		if err := c.Set(fmt.Sprintf("user-%d", u.ID), u); err != nil {
			return err
		}
	}

	u, ok := c.Get("user-1")
	if !ok {
		return errors.New("user-1 missing right after insert")
	}
	log.InfoContext(ctx, "fetched user", slog.Any("user", u), slog.Any("cache", c.Stats()))
	return nil
}

func lruEviction(ctx context.Context, log *slog.Logger) error {
	c, err := sharedCache(log, 3)
	if err != nil {
		return err
	}

	for i := 1; i <= 3; i++ {
		if err := c.Set(fmt.Sprintf("entry-%d", i), fmt.Sprintf("Value %d", i)); err != nil {
			return err
		}
	}
	log.InfoContext(ctx, "initial", slog.Any("keys", c.Keys()))

	c.Get("entry-1")
	if err := c.Set("entry-4", "Value 4"); err != nil {
		return err
	}

	if c.Has("entry-2") {
		return errors.New("entry-2 should have been evicted")
	}
	log.InfoContext(ctx, "after eviction",
		slog.Any("keys", c.Keys()),
		slog.Int("size", c.Len()),
		logger.Capacity(c.Capacity()),
	)
	return nil
}

func sharedInstance(ctx context.Context, log *slog.Logger) error {
	a := cache.Shared()
	b := cache.Shared()
	if a != b {
		return errors.New("shared cache returned two instances")
	}

	if err := a.Set("test-key", "test-value"); err != nil {
		return err
	}
	v, _ := b.Get("test-key")
	log.InfoContext(ctx, "same instance", slog.Any("value", v), logger.Capacity(b.Capacity()))
	return nil
}

func readThrough(ctx context.Context, log *slog.Logger) error {
	c, err := sharedCache(log, 10)
	if err != nil {
		return err
	}
	dir := newUserDirectory()

	for _, id := range []string{"user-123", "user-123", "user-456", "user-789"} {
		reqCtx, _ := requestid.Ensure(ctx)
		u, err := cache.GetOrSet(reqCtx, c, id, dir.find)
		if errors.Is(err, errUserNotFound) {
			log.WarnContext(reqCtx, "lookup failed", logger.Key(id), logger.Error(err))
			continue
		}
		if err != nil {
			return err
		}
		log.InfoContext(reqCtx, "lookup", logger.Key(id), slog.Any("user", u))
	}

	log.InfoContext(ctx, "read-through done",
		slog.Int("backend_lookups", dir.lookups),
		slog.Any("cache", c.Stats()),
	)
	return nil
}

func errorHandling(ctx context.Context, log *slog.Logger) error {
	c := cache.Shared()
	_, resizeErr := c.Resize(-5)

	checks := []struct {
		name string
		err  error
		want error
	}{
		{name: "empty key", err: c.Set("", "value"), want: cache.ErrInvalidKey},
		{name: "nil value", err: c.Set("key", nil), want: cache.ErrInvalidValue},
		{name: "negative size", err: resizeErr, want: cache.ErrInvalidConfig},
	}

	for _, check := range checks {
		if !errors.Is(check.err, check.want) {
			return fmt.Errorf("%s: got %v, want %v", check.name, check.err, check.want)
		}
		log.InfoContext(ctx, "rejected", slog.String("case", check.name), logger.Error(check.err))
	}
	return nil
}

func resize(ctx context.Context, log *slog.Logger) error {
	c, err := sharedCache(log, 5)
	if err != nil {
		return err
	}

	for i := 1; i <= 5; i++ {
		if err := c.Set(fmt.Sprintf("item-%d", i), fmt.Sprintf("Value %d", i)); err != nil {
			return err
		}
	}
	log.InfoContext(ctx, "initial", slog.Any("keys", c.Keys()), logger.Capacity(c.Capacity()))

	n, err := c.Resize(3)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "shrunk", slog.Any("keys", c.Keys()), logger.Evicted(n))

	if _, err := c.Resize(10); err != nil {
		return err
	}
	log.InfoContext(ctx, "grown", slog.Int("size", c.Len()), logger.Capacity(c.Capacity()))
	return nil
}

func removeAndClear(ctx context.Context, log *slog.Logger) error {
	c := cache.Shared()

	for i := 1; i <= 3; i++ {
		if err := c.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("Value %d", i)); err != nil {
			return err
		}
	}
	log.InfoContext(ctx, "initial", slog.Int("size", c.Len()), slog.Bool("has_key_1", c.Has("key-1")))

	c.Remove("key-2")
	log.InfoContext(ctx, "after remove", slog.Any("entries", c.Entries()))

	c.Clear()
	log.InfoContext(ctx, "after clear", slog.Any("cache", c.Stats()))
	return nil
}

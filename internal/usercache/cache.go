// Package usercache implements the side-table cache of account records
// keyed by userUuid. Student and company screens reference accounts by id;
// the cache is filled opportunistically as each page of profiles renders
// and is shared by every component that displays account state.
package usercache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hirebridge/backoffice/internal/domain"
)

// Options tunes a Cache.
type Options struct {
	// TTL bounds how long an entry is served without re-fetching.
	// Zero means entries never expire (updates still replace them).
	TTL time.Duration
	// PrimeConcurrency bounds the background fan-out. Defaults to 4.
	PrimeConcurrency int
	// PrimeTimeout bounds one background fan-out run. Defaults to 30s.
	PrimeTimeout time.Duration
}

// Cache caches account records fetched from the upstream API. Concurrent
// lookups for the same key share a single upstream call; writes are
// last-writer-wins.
type Cache struct {
	users  domain.UserService
	logger *slog.Logger
	opts   Options

	mu      sync.RWMutex
	entries map[string]entry

	flight singleflight.Group
}

type entry struct {
	user    *domain.User
	fetched time.Time
}

// New creates a Cache that loads records through users.
// Panics if users is nil.
func New(users domain.UserService, logger *slog.Logger, opts Options) *Cache {
	if users == nil {
		panic("usercache.New: user service must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.PrimeConcurrency <= 0 {
		opts.PrimeConcurrency = 4
	}
	if opts.PrimeTimeout <= 0 {
		opts.PrimeTimeout = 30 * time.Second
	}
	return &Cache{
		users:   users,
		logger:  logger,
		opts:    opts,
		entries: make(map[string]entry),
	}
}

// Get returns the record for uuid, fetching it on a miss or an expired
// entry. Concurrent calls for the same key share one fetch.
func (c *Cache) Get(ctx context.Context, uuid string) (*domain.User, error) {
	if uuid == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "user uuid is required", nil)
	}
	if u := c.fresh(uuid); u != nil {
		return u, nil
	}
	return c.fetch(ctx, uuid)
}

// Peek returns the cached record without fetching, or nil when absent or
// expired.
func (c *Cache) Peek(uuid string) *domain.User {
	return c.fresh(uuid)
}

// Refresh drops the cached record for uuid and fetches it again. Used after
// a status toggle so exactly one key is reloaded, never the whole list.
func (c *Cache) Refresh(ctx context.Context, uuid string) (*domain.User, error) {
	if uuid == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "user uuid is required", nil)
	}
	c.mu.Lock()
	delete(c.entries, uuid)
	c.mu.Unlock()
	return c.fetch(ctx, uuid)
}

// Prime fetches the given keys in the background with bounded concurrency.
// Keys already cached are skipped; keys already in flight are joined, not
// re-fetched. Prime returns immediately; failures are logged and otherwise
// dropped, matching the per-row fire-and-forget loading the screens use.
//
// The fan-out outlives the triggering request: ctx's values (including the
// upstream bearer token) are kept but its cancellation is not.
func (c *Cache) Prime(ctx context.Context, uuids []string) {
	pending := make([]string, 0, len(uuids))
	seen := make(map[string]struct{}, len(uuids))
	for _, id := range uuids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if c.fresh(id) == nil {
			pending = append(pending, id)
		}
	}
	if len(pending) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.PrimeTimeout)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(c.opts.PrimeConcurrency)
		for _, id := range pending {
			g.Go(func() error {
				if _, err := c.fetch(ctx, id); err != nil {
					c.logger.Warn("prime user detail failed",
						slog.String("user_uuid", id),
						slog.Any("error", err),
					)
				}
				// Per-key failures never abort the rest of the fan-out.
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// fresh returns the cached record when present and within TTL.
func (c *Cache) fresh(uuid string) *domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[uuid]
	if !ok {
		return nil
	}
	if c.opts.TTL > 0 && time.Since(e.fetched) > c.opts.TTL {
		return nil
	}
	return e.user
}

// fetch loads uuid through singleflight and stores the result.
func (c *Cache) fetch(ctx context.Context, uuid string) (*domain.User, error) {
	res, err, _ := c.flight.Do(uuid, func() (any, error) {
		u, err := c.users.GetDetail(ctx, uuid)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[uuid] = entry{user: u, fetched: time.Now()}
		c.mu.Unlock()
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.User), nil
}

// Compile-time check: Cache implements domain.UserCache.
var _ domain.UserCache = (*Cache)(nil)

// Package cache keeps a Redis copy of the deal list in front of the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crm/internal/model"
	"crm/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	dealsKey = "deals:all"
	// genKey counts deal writes. A fill only lands if no write happened
	// between reading the generation and storing the list.
	genKey = "deals:gen"
)

var errStaleFill = errors.New("deal list changed during cache fill")

// DealCache wraps a deal repository with a read-through Redis cache of the
// canonical sequence. Every write bumps the generation and evicts the cached list.
type DealCache struct {
	base  repository.DealRepositoryInterface
	redis *redis.Client
	ttl   time.Duration
}

var _ repository.DealRepositoryInterface = (*DealCache)(nil)

func NewDealCache(base repository.DealRepositoryInterface, client *redis.Client, ttl time.Duration) *DealCache {
	if base == nil {
		panic("cache.NewDealCache: base repository is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &DealCache{base: base, redis: client, ttl: ttl}
}

func (c *DealCache) List(ctx context.Context) ([]model.Deal, error) {
	if deals, ok := c.load(ctx); ok {
		return deals, nil
	}

	gen, genOK := c.generation(ctx)
	deals, err := c.base.List(ctx)
	if err != nil {
		return nil, err
	}

	if genOK {
		c.store(ctx, gen, deals)
	}
	return deals, nil
}

func (c *DealCache) GetByID(ctx context.Context, id uuid.UUID) (*model.Deal, error) {
	return c.base.GetByID(ctx, id)
}

func (c *DealCache) Create(ctx context.Context, deal *model.Deal) error {
	if err := c.base.Create(ctx, deal); err != nil {
		return err
	}
	c.evict(ctx)
	return nil
}

func (c *DealCache) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Deal, error) {
	deal, err := c.base.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	c.evict(ctx)
	return deal, nil
}

func (c *DealCache) ReplaceOrder(ctx context.Context, deals []model.Deal) error {
	err := c.base.ReplaceOrder(ctx, deals)
	// Evict even on failure: a rolled back sequence may already be stale in the cache.
	c.evict(ctx)
	return err
}

func (c *DealCache) load(ctx context.Context) ([]model.Deal, bool) {
	if c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, dealsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).Warn("deal cache read failed, falling back to database")
			_ = c.redis.Del(ctx, dealsKey).Err()
		}
		return nil, false
	}
	var deals []model.Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		log.WithError(err).Warn("discarding undecodable deal cache entry")
		_ = c.redis.Del(ctx, dealsKey).Err()
		return nil, false
	}
	return deals, true
}

// generation returns the current write generation; ok is false when Redis
// cannot be read, in which case nothing gets cached.
func (c *DealCache) generation(ctx context.Context) (int64, bool) {
	if c.redis == nil {
		return 0, false
	}
	gen, err := c.redis.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		log.WithError(err).Warn("failed to read deal cache generation")
		return 0, false
	}
	return gen, true
}

// store caches deals read at generation gen, unless a write has bumped the
// generation since.
func (c *DealCache) store(ctx context.Context, gen int64, deals []model.Deal) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(deals)
	if err != nil {
		log.WithError(err).Error("failed to marshal deal cache payload")
		return
	}

	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, dealsKey, data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		log.Debug("skipping deal cache fill, list changed while loading")
	default:
		log.WithError(err).Error("failed to store deal cache entry")
	}
}

func (c *DealCache) evict(ctx context.Context) {
	if c.redis == nil {
		return
	}
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Del(ctx, dealsKey)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("failed to evict deal cache entry")
	}
}

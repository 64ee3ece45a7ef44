package cart

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps each session cart in a redis hash with a TTL. It is a
// session cache, not durable storage: the TTL is refreshed on every
// mutation and the cart simply expires with the session.
type redisStore struct {
	notifier

	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *redisStore) Add(ctx context.Context, sessionID, productID string) error {
	key := s.key(sessionID)
	qty, err := s.client.HIncrBy(ctx, key, productID, 1).Result()
	if err != nil {
		return err
	}
	s.client.Expire(ctx, key, s.ttl)

	s.publish(Event{SessionID: sessionID, Op: OpAdd, ProductID: productID, Qty: int(qty)})
	return nil
}

func (s *redisStore) Remove(ctx context.Context, sessionID, productID string) error {
	removed, err := s.client.HDel(ctx, s.key(sessionID), productID).Result()
	if err != nil {
		return err
	}

	if removed > 0 {
		s.publish(Event{SessionID: sessionID, Op: OpRemove, ProductID: productID})
	}
	return nil
}

func (s *redisStore) ChangeQuantity(ctx context.Context, sessionID, productID string, delta int) error {
	key := s.key(sessionID)
	qty, err := s.client.HIncrBy(ctx, key, productID, int64(delta)).Result()
	if err != nil {
		return err
	}

	// HIncrBy on an absent field starts from zero, so the result equals
	// the delta exactly when the field did not exist before.
	created := qty == int64(delta)

	// Enforce the no-non-positive-quantity invariant.
	if qty <= 0 {
		if err := s.client.HDel(ctx, key, productID).Err(); err != nil {
			return err
		}
		qty = 0
	}
	s.client.Expire(ctx, key, s.ttl)

	// A non-positive delta against an absent field changes nothing.
	if created && qty == 0 {
		return nil
	}

	s.publish(Event{SessionID: sessionID, Op: OpChange, ProductID: productID, Qty: int(qty)})
	return nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return err
	}

	s.publish(Event{SessionID: sessionID, Op: OpClear})
	return nil
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (Items, error) {
	raw, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	items := make(Items, len(raw))
	for id, v := range raw {
		qty, err := strconv.Atoi(v)
		if err != nil || qty <= 0 {
			continue
		}
		items[id] = qty
	}
	return items, nil
}

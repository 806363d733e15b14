package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/huntdavid175/plateraa-storefront/models"
)

// CartStore is the keyed persistence behind the cart engine. A key scopes
// one cart to a session and an institution, so carts for different
// restaurants never collide.
type CartStore interface {
	Load(ctx context.Context, key string) (*models.Cart, error)
	Save(ctx context.Context, key string, cart *models.Cart) error
	Delete(ctx context.Context, key string) error
}

func CartKey(sessionID, institutionID string) string {
	return fmt.Sprintf("cart:%s:%s", sessionID, institutionID)
}

type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

// decodeCart turns persisted bytes back into a cart. Unparseable state is
// discarded rather than failing the session.
func decodeCart(key string, raw []byte) *models.Cart {
	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		log.Printf("Discarding corrupt cart state for %s: %v", key, err)
		return &models.Cart{}
	}
	return &cart
}

// Load never fails the session: a missing key or unparseable payload is an
// empty cart.
func (s *RedisCartStore) Load(ctx context.Context, key string) (*models.Cart, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeCart(key, []byte(raw)), nil
}

func (s *RedisCartStore) Save(ctx context.Context, key string, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// MemoryCartStore backs carts when redis is not configured, and tests.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string][]byte{}}
}

func (s *MemoryCartStore) Load(ctx context.Context, key string) (*models.Cart, error) {
	s.mu.Lock()
	raw, ok := s.carts[key]
	s.mu.Unlock()

	if !ok {
		return &models.Cart{}, nil
	}
	return decodeCart(key, raw), nil
}

func (s *MemoryCartStore) Save(ctx context.Context, key string, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.carts, key)
	s.mu.Unlock()
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"donorlink-web/internal/session"

	"github.com/redis/go-redis/v9"
)

// Redis keeps client storage under client:<device>:<key>.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Redis provider. A zero ttl keeps values without expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (p *Redis) For(w http.ResponseWriter, r *http.Request) session.Store {
	return p.Device(DeviceID(w, r))
}

func (p *Redis) Device(deviceID string) session.Store {
	return &redisStore{parent: p, device: deviceID}
}

type redisStore struct {
	parent *Redis
	device string
}

func (s *redisStore) key(key string) string {
	return fmt.Sprintf("client:%s:%s", s.device, key)
}

func (s *redisStore) Load(ctx context.Context, key string) (string, bool, error) {
	v, err := s.parent.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *redisStore) Save(ctx context.Context, key, value string) error {
	return s.parent.client.Set(ctx, s.key(key), value, s.parent.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.parent.client.Del(ctx, s.key(key)).Err()
}

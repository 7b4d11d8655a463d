package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const deniedTokenPrefix = "denied_token:"

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
	DenyToken(token string, ttl time.Duration) error
	IsTokenDenied(token string) (bool, error)
	Ping() error
}

// RedisService wraps the shared Redis client
type RedisService struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisService(client *redis.Client) InterfaceRedisService {
	return &RedisService{
		client: client,
		ctx:    context.Background(),
	}
}

// 1. Set stores a key with an expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(s.ctx, key, value, expiration).Err()
}

// 2. Get reads a key
func (s *RedisService) Get(key string) (string, error) {
	return s.client.Get(s.ctx, key).Result()
}

// 3. Delete removes a key
func (s *RedisService) Delete(key string) error {
	return s.client.Del(s.ctx, key).Err()
}

// 4. DenyToken marks a token as revoked until it would expire anyway
func (s *RedisService) DenyToken(token string, ttl time.Duration) error {
	return s.client.Set(s.ctx, deniedTokenPrefix+token, "1", ttl).Err()
}

// 5. IsTokenDenied reports whether a token was revoked
func (s *RedisService) IsTokenDenied(token string) (bool, error) {
	_, err := s.client.Get(s.ctx, deniedTokenPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// 6. Ping checks connectivity
func (s *RedisService) Ping() error {
	return s.client.Ping(s.ctx).Err()
}

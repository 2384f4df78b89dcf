package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrOTPNotFound = errors.New("otp not found or expired")

// OTPStore holds short-lived password-reset codes keyed by email.
type OTPStore interface {
	Set(ctx context.Context, email, otp string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type redisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) OTPStore {
	return &redisOTPStore{client: client}
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

func (s *redisOTPStore) Set(ctx context.Context, email, otp string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKey(email), otp, ttl).Err()
}

func (s *redisOTPStore) Get(ctx context.Context, email string) (string, error) {
	otp, err := s.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrOTPNotFound
	}
	if err != nil {
		return "", err
	}
	return otp, nil
}

func (s *redisOTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKey(email)).Err()
}

// MemoryOTPStore is the in-process fallback used in tests so no Redis
// instance is required.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]memoryOTP
}

type memoryOTP struct {
	otp       string
	expiresAt time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]memoryOTP)}
}

func (s *MemoryOTPStore) Set(ctx context.Context, email, otp string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = memoryOTP{otp: otp, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Get(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, email)
		return "", ErrOTPNotFound
	}
	return entry.otp, nil
}

func (s *MemoryOTPStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

package auth

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTP lifetime matches the reset email wording.
const OTPTTL = 5 * time.Minute

var (
	// ErrOTPNotFound means no code was requested for this email.
	ErrOTPNotFound = errors.New("no OTP requested")
	// ErrOTPExpired means the code existed but its lifetime has passed.
	ErrOTPExpired = errors.New("OTP expired")
)

// OTPStore holds short-lived reset codes keyed by email. Expiry is checked
// on read; there is no background sweeper.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// GenerateOTP returns a numeric code of the given length.
func GenerateOTP(length int) string {
	digits := "0123456789"
	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteByte(digits[rand.Intn(len(digits))])
	}
	return otp.String()
}

type memoryEntry struct {
	code    string
	expires time.Time
}

// MemoryOTPStore is the in-process fallback used when Redis is not
// configured, and in tests.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryOTPStore) Put(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = memoryEntry{code: code, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Get(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return "", ErrOTPNotFound
	}
	if s.now().After(entry.expires) {
		delete(s.entries, email)
		return "", ErrOTPExpired
	}
	return entry.code, nil
}

func (s *MemoryOTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

// RedisOTPStore keeps codes in Redis under otp:<email> with a TTL, so
// expiry survives restarts and is shared across instances.
type RedisOTPStore struct {
	Client *redis.Client
}

func NewRedisOTPStore(addr string) *RedisOTPStore {
	return &RedisOTPStore{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *RedisOTPStore) key(email string) string {
	return "otp:" + email
}

func (s *RedisOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.Client.Set(ctx, s.key(email), code, ttl).Err()
}

func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.Client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Redis drops the key at TTL, so a miss covers both cases.
			return "", ErrOTPNotFound
		}
		return "", err
	}
	return code, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	return s.Client.Del(ctx, s.key(email)).Err()
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"

	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 3 * time.Second
	scanBatch      = 100
)

// appendUniqueScript pushes ARGV[1] onto the list KEYS[1] unless present and
// refreshes the list TTL (ARGV[2], milliseconds) when positive.
var appendUniqueScript = goredis.NewScript(`
local items = redis.call("LRANGE", KEYS[1], 0, -1)
for _, item in ipairs(items) do
  if item == ARGV[1] then
    return 0
  end
end
redis.call("RPUSH", KEYS[1], ARGV[1])
local ttl = tonumber(ARGV[2])
if ttl > 0 then
  redis.call("PEXPIRE", KEYS[1], ttl)
end
return 1
`)

// Compile-time check to ensure RedisDocumentStore implements DocumentStore interface
var _ output.DocumentStore = (*RedisDocumentStore)(nil)

// RedisDocumentStore struct - Output adapter storing book documents as strings
// and read histories as lists
type RedisDocumentStore struct {
	client     goredis.UniversalClient
	timeout    time.Duration
	historyTTL time.Duration
}

// NewRedisDocumentStore wraps a shared client. timeout bounds every round-trip;
// historyTTL, when positive, expires a history list after that much inactivity.
func NewRedisDocumentStore(client goredis.UniversalClient, timeout, historyTTL time.Duration) *RedisDocumentStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RedisDocumentStore{
		client:     client,
		timeout:    timeout,
		historyTTL: historyTTL,
	}
}

// Exists reports whether key is present
func (s *RedisDocumentStore) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, unavailable("exists", err)
	}
	return n > 0, nil
}

// Get returns the string stored at key
func (s *RedisDocumentStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return "", unavailable("get", err)
	}
	return value, nil
}

// Set stores value at key without expiry
func (s *RedisDocumentStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return unavailable("set", err)
	}
	return nil
}

// Keys walks the keyspace with SCAN so a large database is not blocked
func (s *RedisDocumentStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	seen := make(map[string]struct{})
	keys := make([]string, 0)
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return nil, unavailable("scan", err)
		}
		// SCAN may return a key more than once
		for _, key := range batch {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// AppendUnique runs the check and the RPUSH inside one Lua script, which
// Redis executes atomically
func (s *RedisDocumentStore) AppendUnique(ctx context.Context, key, value string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	appended, err := appendUniqueScript.Run(ctx, s.client, []string{key}, value, s.historyTTL.Milliseconds()).Int64()
	if err != nil {
		return false, unavailable("append", err)
	}
	return appended == 1, nil
}

// Range returns the whole list at key
func (s *RedisDocumentStore) Range(ctx context.Context, key string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	items, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, unavailable("lrange", err)
	}
	if items == nil {
		items = make([]string, 0)
	}
	return items, nil
}

// Ping checks the connection
func (s *RedisDocumentStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: redis %s: %v", domain.ErrStoreUnavailable, op, err)
}

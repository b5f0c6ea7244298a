package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// defaultRedisAddr is used when the config names neither a URL nor an
// address.
const defaultRedisAddr = "localhost:6379"

// redisKeyPrefix namespaces deck sessions in a shared Redis.
const redisKeyPrefix = "pptgen:session:"

// RedisConfig configures the Redis-backed session store. URL (a
// redis:// connection string) wins over the discrete fields.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps sessions in Redis with native TTL expiry, for
// multi-process serving. Safe for concurrent use.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse redis url")
		}
		opts = parsed
	} else {
		addr := cfg.Addr
		if addr == "" {
			addr = defaultRedisAddr
		}
		opts = &redis.Options{Addr: addr, Password: cfg.Password, DB: cfg.DB}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "connect redis at %s", opts.Addr)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "get session %s", id)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "decode session %s", id)
	}

	// The key TTL normally handles expiry; this guards against clock
	// drift between writers.
	if sess.IsExpired() {
		_ = r.client.Del(ctx, redisKey(id)).Err()
		return nil, expiredErr(id)
	}
	return &sess, nil
}

func (r *RedisStore) Set(ctx context.Context, sess *Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return r.Delete(ctx, sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode session %s", sess.ID)
	}
	if err := r.client.Set(ctx, redisKey(sess.ID), data, ttl).Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "store session %s", sess.ID)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "delete session %s", id)
	}
	return nil
}

// Cleanup is a no-op; Redis expires keys natively.
func (r *RedisStore) Cleanup(ctx context.Context) error { return nil }

// Close releases the Redis connection.
func (r *RedisStore) Close() error { return r.client.Close() }

package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/carlosgonzalezvergara/vendler/redis"
	"github.com/kelseyhightower/envconfig"
	"time"
)

type Config struct {
	TTLMinutes int `envconfig:"VENDLER_SESSION_TTL" default:"240"`
}

type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Lock(ctx context.Context, key string) (redis.ReleaseLock, error)
}

// RedisStore keeps each session as a JSON document that expires after ttl
// without activity.
type RedisStore struct {
	kv  kv
	ttl time.Duration
}

func NewRedisStore() (*RedisStore, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	client, err := redis.NewClient(redis.SessionsDB)
	if err != nil {
		return nil, err
	}
	storeLogger := logger.NewLogger("Session store")
	storeLogger.Info().Int("ttl_minutes", cfg.TTLMinutes).Msg("Keeping sessions in Redis")
	return &RedisStore{kv: client, ttl: time.Duration(cfg.TTLMinutes) * time.Minute}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func notFound(err error, id string) error {
	if errors.Is(err, redis.ErrNotFound) {
		return fmt.Errorf("%w: '%s'", ErrSessionNotFound, id)
	}
	return err
}

func (r *RedisStore) Create(ctx context.Context, rec *Record) error {
	prepare(rec)
	return r.put(ctx, rec)
}

func (r *RedisStore) put(ctx context.Context, rec *Record) error {
	b, err := encode(rec)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, sessionKey(rec.ID), b, r.ttl)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	b, err := r.kv.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, notFound(err, id)
	}
	return decode(b)
}

func (r *RedisStore) Save(ctx context.Context, rec *Record) error {
	if _, err := r.kv.Get(ctx, sessionKey(rec.ID)); err != nil {
		return notFound(err, rec.ID)
	}
	rec.UpdatedAt = time.Now().UTC()
	return r.put(ctx, rec)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return notFound(r.kv.Delete(ctx, sessionKey(id)), id)
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(rec *Record) error) (rec *Record, err error) {
	release, err := r.kv.Lock(ctx, sessionKey(id))
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := release(); err == nil && releaseErr != nil {
			rec, err = nil, releaseErr
		}
	}()

	rec, err = r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = fn(rec); err != nil {
		return nil, err
	}
	rec.UpdatedAt = time.Now().UTC()
	if err = r.put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/bsm/redislock"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
	"time"
)

type DB int

// Databases used by the service.
const (
	SessionsDB DB = 0
	JobsDB     DB = 1
	GlossesDB  DB = 2
)

type ReleaseLock func() error

var ErrNotFound = errors.New("redis key not found")

type Client struct {
	client         redis.UniversalClient
	lockExpiration time.Duration
	lockRetries    int
}

type Config struct {
	LockExpirationSeconds   int     `envconfig:"VENDLER_REDIS_LOCK_EXPIRATION" default:"3"`
	LockRetries             int     `envconfig:"VENDLER_REDIS_LOCK_RETRIES" default:"20"`
	Host                    string  `envconfig:"VENDLER_REDIS_HOST" required:"true"`
	Port                    string  `envconfig:"VENDLER_REDIS_PORT" default:"6379"`
	HASentinelPort          string  `envconfig:"VENDLER_REDIS_HA_SENTINEL_PORT" default:"26379"`
	HASentinelMasterName    string  `envconfig:"VENDLER_REDIS_HA_MASTER_NAME" default:"mymaster"`
	Password                string  `envconfig:"VENDLER_REDIS_AUTH_PASSWORD" default:""`
	AuthRequired            bool    `envconfig:"VENDLER_REDIS_AUTH_REQUIRED" default:"false"`
	HAMode                  bool    `envconfig:"VENDLER_REDIS_HA_MODE" default:"false"`
	HASentinelSocketTimeout float32 `envconfig:"VENDLER_REDIS_SOCKET_TIMEOUT" default:"0.5"`
}

func NewClient(db DB) (*Client, error) {
	cfg, err := readEnvironment()
	if err != nil {
		return nil, err
	}
	var client redis.UniversalClient
	if cfg.HAMode {
		client = CreateFailoverClient(cfg, db)
	} else {
		client = CreateClient(cfg, db)
	}
	return Wrap(client, time.Duration(cfg.LockExpirationSeconds)*time.Second, cfg.LockRetries), nil
}

// Wrap builds a Client around an existing connection.
func Wrap(client redis.UniversalClient, lockExpiration time.Duration, lockRetries int) *Client {
	return &Client{client: client, lockExpiration: lockExpiration, lockRetries: lockRetries}
}

func CreateFailoverClient(cfg *Config, db DB) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.HASentinelPort)
	timeout := time.Duration(cfg.HASentinelSocketTimeout * float32(time.Second))
	options := redis.FailoverOptions{
		SentinelAddrs: []string{addr},
		ReadTimeout:   timeout,
		WriteTimeout:  timeout,
		MaxRetries:    6,
		DB:            int(db),
		MasterName:    cfg.HASentinelMasterName,
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewFailoverClient(&options)
}

func CreateClient(cfg *Config, db DB) *redis.Client {
	options := redis.Options{
		Addr:       fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		MaxRetries: 6,
		DB:         int(db),
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewClient(&options)
}

func (client *Client) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := client.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores the value; a zero ttl keeps it forever.
func (client *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return client.client.Set(ctx, key, value, ttl).Err()
}

func (client *Client) Delete(ctx context.Context, key string) error {
	n, err := client.client.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: '%s'", ErrNotFound, key)
	}
	return nil
}

func (client *Client) Lock(ctx context.Context, key string) (ReleaseLock, error) {
	locker := redislock.New(client.client)
	strategy := redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), client.lockRetries)
	lock, err := locker.Obtain(ctx, "lock:"+key, client.lockExpiration, &redislock.Options{RetryStrategy: strategy})
	if err != nil {
		return nil, fmt.Errorf("could not lock '%s': %w", key, err)
	}
	return func() error {
		return lock.Release(ctx)
	}, nil
}

// GetDocument reads a JSON document into doc. Fields doc does not know about
// are ignored.
func (client *Client) GetDocument(ctx context.Context, key string, doc interface{}) error {
	b, err := client.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, doc)
}

func (client *Client) SaveDocument(ctx context.Context, key string, doc interface{}) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, 0)
}

// UpdateDocument applies update to the document under a lock. Only the
// fields update changed are written back, so fields owned by other services
// survive.
func (client *Client) UpdateDocument(ctx context.Context, key string, doc interface{}, update func()) (err error) {
	release, err := client.Lock(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := release(); err == nil {
			err = releaseErr
		}
	}()

	raw, err := client.Get(ctx, key)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, doc); err != nil {
		return err
	}
	patched, err := PatchDocument(raw, doc, update)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, patched, 0)
}

// PatchDocument runs update on doc, which must hold the decoded raw, and
// merges what changed into raw.
func PatchDocument(raw []byte, doc interface{}, update func()) ([]byte, error) {
	before, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	update()
	after, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(raw, patch)
}

func (client *Client) Close() error {
	return client.client.Close()
}

func readEnvironment() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

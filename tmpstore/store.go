package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	RenderPrefix = "render:"
)

// ErrCacheMiss is returned when the key is not found or expired.
var ErrCacheMiss = errors.New("cache miss")

// ErrCorruptedRender is returned when a cached entry cannot be decoded.
var ErrCorruptedRender = errors.New("corrupted cached render")

// RenderedText is the cached output of a single render call.
type RenderedText struct {
	HTML      string    `json:"html"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	SaveRender(ctx context.Context, key string, data RenderedText, ttl time.Duration) error
	GetRender(ctx context.Context, key string) (*RenderedText, error)
	DeleteRender(ctx context.Context, key string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// Ping checks the connection to Redis.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (store *RedisStore) Close() error {
	return store.client.Close()
}

// SaveRender caches the rendered text under the key for the ttl.
func (store *RedisStore) SaveRender(
	ctx context.Context,
	key string,
	data RenderedText,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize rendered text: %w", err)
	}

	return store.client.Set(ctx, RenderPrefix+key, jsonData, ttl).Err()
}

// GetRender returns the cached rendered text.
// Returns ErrCacheMiss if not found or expired.
func (store *RedisStore) GetRender(ctx context.Context, key string) (*RenderedText, error) {
	jsonData, err := store.client.Get(ctx, RenderPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get rendered text: %w", err)
	}

	var rendered RenderedText
	if err := json.Unmarshal([]byte(jsonData), &rendered); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedRender, err)
	}

	return &rendered, nil
}

// DeleteRender drops the cached rendered text, a missing key is not an error.
func (store *RedisStore) DeleteRender(ctx context.Context, key string) error {
	return store.client.Del(ctx, RenderPrefix+key).Err()
}

// RenderKey derives the cache key of a render call.
//
// The viewer's identity is not part of the key, only whether a viewer is present,
// because mentions render differently for anonymous and signed in viewers.
func RenderKey(format string, hasViewer bool, settings []bbcode.EmojiSetting, text string) string {
	h := sha256.New()

	h.Write([]byte(format))
	h.Write([]byte{0, viewerFlag(hasViewer), 0})

	for _, s := range settings {
		h.Write([]byte(strconv.Itoa(int(s.Type))))
		h.Write([]byte{'='})
		h.Write([]byte(s.Category))
		h.Write([]byte{';'})
	}
	h.Write([]byte{0})

	h.Write([]byte(text))

	return hex.EncodeToString(h.Sum(nil))
}

func viewerFlag(hasViewer bool) byte {
	if hasViewer {
		return '1'
	}
	return '0'
}

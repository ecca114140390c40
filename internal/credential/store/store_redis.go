package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vcpipe/internal/credential/models"
	"vcpipe/pkg/platform/sentinel"
)

const (
	defaultKeyPrefix    = "vcpipe:verification:"
	defaultRecordTTL    = 30 * 24 * time.Hour
	redisHistoryMaxSize = 100
)

// RedisStore keeps the latest record under <prefix><credentialID> and a
// capped history list under <prefix><credentialID>:history.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewRedisStore(client redis.Cmdable, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    defaultRecordTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) latestKey(credentialID string) string {
	return s.prefix + credentialID
}

func (s *RedisStore) historyKey(credentialID string) string {
	return s.prefix + credentialID + ":history"
}

func (s *RedisStore) Save(ctx context.Context, record models.VerificationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal verification record: %w", err)
	}

	latest := s.latestKey(record.CredentialID)
	history := s.historyKey(record.CredentialID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, latest, payload, s.ttl)
		pipe.LPush(ctx, history, payload)
		pipe.LTrim(ctx, history, 0, redisHistoryMaxSize-1)
		pipe.Expire(ctx, history, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save verification record: %w", err)
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context, credentialID string) (*models.VerificationRecord, error) {
	payload, err := s.client.Get(ctx, s.latestKey(credentialID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get verification record: %w", err)
	}

	var record models.VerificationRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal verification record: %w", err)
	}
	return &record, nil
}

func (s *RedisStore) History(ctx context.Context, credentialID string, limit int) ([]models.VerificationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	values, err := s.client.LRange(ctx, s.historyKey(credentialID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list verification history: %w", err)
	}

	out := make([]models.VerificationRecord, 0, len(values))
	for _, v := range values {
		var record models.VerificationRecord
		if err := json.Unmarshal([]byte(v), &record); err != nil {
			return nil, fmt.Errorf("unmarshal verification record: %w", err)
		}
		out = append(out, record)
	}
	return out, nil
}

package drawhistory

import (
	"context"
	"encoding/json"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	redisclient "github.com/KirkDiggler/name-picker/internal/redis"
)

const (
	// Key pattern: draw_history:{kind}, newest record at the head
	historyKeyPrefix = "draw_history:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client     redisclient.Client
	MaxRecords int
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.MaxRecords < 0 {
		return errors.InvalidArgument("max records cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	maxRecords int
}

// NewRedis creates a Redis backed history repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxRecords := cfg.MaxRecords
	if maxRecords == 0 {
		maxRecords = DefaultMaxRecords
	}

	return &redisRepository{
		client:     cfg.Client,
		maxRecords: maxRecords,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append pushes the record and trims the list in one transaction
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	key := buildKey(input.Record.Kind)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, recordJSON)
		pipe.LTrim(ctx, key, 0, int64(r.maxRecords-1))
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store record in Redis")
	}

	return &AppendOutput{}, nil
}

// List reads the newest records. Records of several kinds are merged by draw time.
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}
	kinds, err := kindsFor(input.Kind)
	if err != nil {
		return nil, err
	}
	limit := limitOrDefault(input.Limit, r.maxRecords*len(kinds))

	var records []*Record
	for _, kind := range kinds {
		values, err := r.client.LRange(ctx, buildKey(kind), 0, int64(limit-1)).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read records from Redis")
		}

		for _, value := range values {
			var record Record
			if err := json.Unmarshal([]byte(value), &record); err != nil {
				return nil, errors.Wrapf(err, "failed to unmarshal record")
			}
			records = append(records, &record)
		}
	}

	if len(kinds) > 1 {
		slices.SortStableFunc(records, func(a, b *Record) int {
			return b.DrawnAt.Compare(a.DrawnAt)
		})
	}
	if len(records) > limit {
		records = records[:limit]
	}

	return &ListOutput{Records: records}, nil
}

// Clear deletes the list of each selected kind
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		input = &ClearInput{}
	}
	kinds, err := kindsFor(input.Kind)
	if err != nil {
		return nil, err
	}

	lengths := make([]*redis.IntCmd, len(kinds))
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, kind := range kinds {
			lengths[i] = pipe.LLen(ctx, buildKey(kind))
			pipe.Del(ctx, buildKey(kind))
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to clear records in Redis")
	}

	removed := 0
	for _, length := range lengths {
		removed += int(length.Val())
	}
	return &ClearOutput{Removed: removed}, nil
}

// buildKey creates the Redis key for a kind's history
func buildKey(kind entities.Kind) string {
	return historyKeyPrefix + string(kind)
}

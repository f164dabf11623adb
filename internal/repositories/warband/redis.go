package warband

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/warbandforge/warband-api/internal/errors"
	"github.com/warbandforge/warband-api/internal/pkg/clock"
	redisclient "github.com/warbandforge/warband-api/internal/redis"
)

const (
	warbandKeyPrefix   = "warband:"
	collectionIndexKey = "warband:index"
	factionIndexPrefix = "warband:faction:"

	// Error messages
	errWarbandNil     = "warband cannot be nil"
	errWarbandIDEmpty = "warband ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis warband repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed warband repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Warband == nil {
		return nil, errors.InvalidArgument(errWarbandNil)
	}
	if input.Warband.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	key := warbandKeyPrefix + input.Warband.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("warband with ID %s already exists", input.Warband.ID)
	}

	now := r.clock.Now()
	record := &Record{
		Warband:   input.Warband.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal warband record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // Saved warbands never expire
	pipe.SAdd(ctx, collectionIndexKey, input.Warband.ID)
	if input.Warband.FactionID != "" {
		pipe.SAdd(ctx, factionIndexPrefix+input.Warband.FactionID, input.Warband.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create warband")
	}

	return &CreateOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	record, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*Record, error) {
	result, err := r.client.Get(ctx, warbandKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("warband with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get warband")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal warband record")
	}
	return &record, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Warband == nil {
		return nil, errors.InvalidArgument(errWarbandNil)
	}
	if input.Warband.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	existing, err := r.get(ctx, input.Warband.ID)
	if err != nil {
		return nil, err
	}

	record := &Record{
		Warband:   input.Warband.Clone(),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: r.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal warband record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, warbandKeyPrefix+input.Warband.ID, data, 0)

	// Move between faction indexes on a faction change
	if existing.Warband.FactionID != input.Warband.FactionID {
		if existing.Warband.FactionID != "" {
			pipe.SRem(ctx, factionIndexPrefix+existing.Warband.FactionID, input.Warband.ID)
		}
		if input.Warband.FactionID != "" {
			pipe.SAdd(ctx, factionIndexPrefix+input.Warband.FactionID, input.Warband.ID)
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update warband")
	}

	return &UpdateOutput{Record: record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	existing, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, warbandKeyPrefix+input.ID)
	pipe.SRem(ctx, collectionIndexKey, input.ID)
	if existing.Warband.FactionID != "" {
		pipe.SRem(ctx, factionIndexPrefix+existing.Warband.FactionID, input.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete warband")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := collectionIndexKey
	if input.FactionID != "" {
		indexKey = factionIndexPrefix + input.FactionID
	}

	slog.DebugContext(ctx, "listing warbands",
		"index_key", indexKey)

	records, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list warbands",
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	return &ListOutput{Records: records}, nil
}

// listByIndex resolves every id in an index set, pruning dangling entries
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*Record, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get warbands from index %s", indexKey)
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		record, err := r.get(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "warband not found, cleaning up index",
					"warband_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get warband %s", id)
		}
		records = append(records, record)
	}

	return records, nil
}

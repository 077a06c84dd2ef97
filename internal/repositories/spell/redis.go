package spell

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-dpr/internal/redis"
)

const (
	spellKeyPrefix = dnd5e.EntityTypeSpell + ":"
	levelIndexKey  = "spells:by_level"

	errKeyEmpty = "spell key cannot be empty"
)

// RedisConfig contains configuration for the Redis spell repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed spell repository. Spells are stored as
// JSON under spell:<key> with a sorted set indexing keys by level.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument("spell cannot be nil")
	}
	if input.Spell.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	data, err := json.Marshal(input.Spell)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spell %s", input.Spell.Key)
	}

	key := EntityKey(input.Spell)
	var added *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		added = pipe.ZAdd(ctx, levelIndexKey, redis.Z{
			Score:  float64(input.Spell.Level),
			Member: input.Spell.GetID(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store spell %s", input.Spell.Key)
	}

	return &PutOutput{Created: added.Val() > 0}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Key)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("spell %s not found", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get spell %s", input.Key)
	}

	var fact dnd5e.SpellFact
	if err := json.Unmarshal([]byte(result), &fact); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell %s", input.Key)
	}

	return &GetOutput{Spell: &fact}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	maxScore := "+inf"
	if input.MaxLevel != nil {
		if *input.MaxLevel < input.MinLevel {
			return nil, errors.InvalidArgumentf("max level %d is below min level %d", *input.MaxLevel, input.MinLevel)
		}
		maxScore = strconv.Itoa(*input.MaxLevel)
	}

	keys, err := r.client.ZRangeByScore(ctx, levelIndexKey, &redis.ZRangeBy{
		Min: strconv.Itoa(input.MinLevel),
		Max: maxScore,
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read spell level index")
	}

	out := &ListOutput{Spells: []*dnd5e.SpellFact{}}
	if len(keys) == 0 {
		return out, nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = GetKey(k)
	}

	values, err := r.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spells")
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// indexed but the document is gone
			continue
		}
		var fact dnd5e.SpellFact
		if err := json.Unmarshal([]byte(s), &fact); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell %s", keys[i])
		}
		if input.Class != "" && !fact.HasClass(input.Class) {
			continue
		}
		out.Spells = append(out.Spells, &fact)
	}

	sort.SliceStable(out.Spells, func(i, j int) bool {
		if out.Spells[i].Level != out.Spells[j].Level {
			return out.Spells[i].Level < out.Spells[j].Level
		}
		return out.Spells[i].Key < out.Spells[j].Key
	})

	return out, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	var deleted *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, GetKey(input.Key))
		pipe.ZRem(ctx, levelIndexKey, input.Key)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete spell %s", input.Key)
	}
	if deleted.Val() == 0 {
		return nil, errors.NotFoundf("spell %s not found", input.Key)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a spell
// Exposed for testing purposes
func GetKey(spellKey string) string {
	return spellKeyPrefix + spellKey
}

// EntityKey returns the Redis key for any stored entity, <type>:<id>
func EntityKey(entity core.Entity) string {
	return entity.GetType() + ":" + entity.GetID()
}

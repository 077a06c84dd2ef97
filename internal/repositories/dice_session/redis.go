package dicesession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dpr/internal/redis"
)

const (
	// dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"

	// DefaultTTL is used when Config.TTL is zero
	DefaultTTL = 15 * time.Minute

	maxAppendRetries = 3

	errEntityIDEmpty = "entity ID cannot be empty"
	errContextEmpty  = "context cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append runs a read-modify-write under WATCH so concurrent rolls into the
// same session are not lost.
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateIdentity(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument("at least one roll is required")
	}

	key := GetKey(input.EntityID, input.Context)
	var out *AppendOutput

	txf := func(tx *redis.Tx) error {
		now := r.clock.Now()

		session, err := r.load(ctx, tx, key)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}

		created := session == nil || !now.Before(session.ExpiresAt)
		if created {
			session = &DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				CreatedAt: now,
				ExpiresAt: now.Add(r.ttl),
			}
		}
		session.Rolls = append(session.Rolls, input.Rolls...)

		data, err := json.Marshal(session)
		if err != nil {
			return errors.Wrap(err, "failed to marshal session")
		}

		remaining := session.ExpiresAt.Sub(now)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, remaining)
			return nil
		})
		if err != nil {
			return err
		}

		out = &AppendOutput{Session: session, Created: created}
		return nil
	}

	for i := 0; i < maxAppendRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}

	return nil, errors.Unavailablef("session %s is busy, retry the roll", key)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateIdentity(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := GetKey(input.EntityID, input.Context)
	session, err := r.load(ctx, r.client, key)
	if err != nil {
		return nil, err
	}

	// Redis expiry and the clock can disagree by a few milliseconds
	if !r.clock.Now().Before(session.ExpiresAt) {
		_ = r.client.Del(ctx, key).Err()
		return nil, errors.NotFound("dice session has expired")
	}

	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateIdentity(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := GetKey(input.EntityID, input.Context)
	data, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return &DeleteOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		// already gone, the count is just unknown
		return &DeleteOutput{}, nil
	}

	// nolint:gosec // roll count is always small
	return &DeleteOutput{RollsDeleted: int32(len(session.Rolls))}, nil
}

// stringGetter is satisfied by both the client and a WATCH transaction
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) load(ctx context.Context, c stringGetter, key string) (*DiceSession, error) {
	data, err := c.Get(ctx, key).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFound("dice session not found")
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	return &session, nil
}

func validateIdentity(entityID, ctxName string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if ctxName == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

// GetKey returns the Redis key for a session
// Exposed for testing purposes
func GetKey(entityID, ctxName string) string {
	return sessionKeyPrefix + entityID + ":" + ctxName
}

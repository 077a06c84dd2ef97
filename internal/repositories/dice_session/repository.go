// Package dicesession stores short-lived roll sessions. A session groups the
// rolls one entity made in one context, e.g. "fireball damage" for a caster.
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-dpr/internal/repositories/dice_session Repository

// DiceSession is the ordered list of rolls for an entity and context
type DiceSession struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll

	CreatedAt time.Time
	ExpiresAt time.Time
}

// DiceRoll is one evaluated expression
type DiceRoll struct {
	RollID   string
	Notation string

	// Dice holds every face rolled, kept or not
	Dice []int32
	// Dropped holds the faces discarded by keep-highest/lowest terms
	Dropped []int32

	DiceTotal int32
	Modifier  int32
	Total     int32

	// Expected is the expression average, so a roll can be read against
	// the analyzer's figures
	Expected float64

	Description string
}

// AppendInput adds rolls to a session, creating it if needed
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
}

// AppendOutput returns the session after the append
type AppendOutput struct {
	Session *DiceSession
	Created bool
}

// GetInput identifies a session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput identifies a session to remove
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput reports how many rolls went away with the session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines roll session storage
type Repository interface {
	// Append adds rolls to the session. A new session expires after the
	// configured TTL; appending never extends an existing expiry.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get returns errors.NotFound for missing or expired sessions
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete is idempotent; a missing session deletes zero rolls
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

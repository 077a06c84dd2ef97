// Package spell provides the interface for spell fact persistence
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/KirkDiggler/rpg-dpr/internal/repositories/spell Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// Repository stores the spell facts the analyzers read
type Repository interface {
	// Put creates or replaces a spell by key
	// Returns errors.InvalidArgument for a nil spell or empty key
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves one spell
	// Returns errors.NotFound if the key is unknown
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns spells in a level range, ordered by level then key
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a spell
	// Returns errors.NotFound if the key is unknown
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing a spell
type PutInput struct {
	Spell *dnd5e.SpellFact
}

// PutOutput defines the output for storing a spell
type PutOutput struct {
	Created bool
}

// GetInput defines the input for getting a spell
type GetInput struct {
	Key string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *dnd5e.SpellFact
}

// ListInput filters a listing. A nil MaxLevel means no upper bound and an
// empty Class means every class.
type ListInput struct {
	MinLevel int
	MaxLevel *int
	Class    string
}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Spells []*dnd5e.SpellFact
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	Key string
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}

package dice

import (
	dicesession "github.com/KirkDiggler/rpg-dpr/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollSpellInput rolls a stored spell's damage. SlotLevel 0 casts at the
// spell's own level. An empty Context uses "spell:<key>".
type RollSpellInput struct {
	EntityID  string
	Context   string
	SpellKey  string
	SlotLevel int
	// Times rolls the damage repeatedly, e.g. once per target. Defaults to 1.
	Times int
}

// RollSpellOutput defines the response for rolling spell damage
type RollSpellOutput struct {
	Notation string
	Rolls    []*dicesession.DiceRoll
	Session  *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

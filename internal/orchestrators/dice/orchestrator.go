// Package dice implements the roll session service. Rolls are for the table,
// not for analysis: nothing in the analyzers reads them.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-dpr/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/spelldpr"
	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-dpr/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-dpr/internal/repositories/spell"
)

const (
	// ContextSpellPrefix prefixes the default session context for spell rolls
	ContextSpellPrefix = dnd5e.EntityTypeSpell + ":"

	// MaxSpellRolls caps RollSpellInput.Times
	MaxSpellRolls = 20

	// MaxRollDice caps the dice one expression may throw
	MaxRollDice = 1000

	// MaxDieSides caps the size of a single die
	MaxDieSides = 1000
)

// Service defines the interface for dice operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// RollSpell rolls the damage a stored spell deals at a slot level
	RollSpell(ctx context.Context, input *RollSpellInput) (*RollSpellOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	SpellRepo       spell.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to the toolkit's crypto roller
	Roller toolkitdice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	spellRepo       spell.Repository
	idGen           idgen.Generator
	roller          toolkitdice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		spellRepo:       cfg.SpellRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
	}, nil
}

// RollDice rolls any expression the engine parses, keep terms and
// modifiers included, and appends the roll to the session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	errors.ValidateRequired("context", input.Context, vb)
	errors.ValidateRequired("notation", input.Notation, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	expr, err := dice.Parse(input.Notation)
	if err != nil {
		return nil, err
	}

	roll, err := o.roll(expr, input.Notation, input.Description)
	if err != nil {
		return nil, err
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    []dicesession.DiceRoll{*roll},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store roll")
	}

	slog.Info("Dice rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: appendOutput.Session,
	}, nil
}

func (o *orchestrator) RollSpell(ctx context.Context, input *RollSpellInput) (*RollSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	errors.ValidateRequired("spell_key", input.SpellKey, vb)
	if input.SlotLevel != 0 {
		errors.ValidateRange("slot_level", input.SlotLevel, 1, 9, vb)
	}
	if input.Times != 0 {
		errors.ValidateRange("times", input.Times, 1, MaxSpellRolls, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.spellRepo.Get(ctx, spell.GetInput{Key: input.SpellKey})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", input.SpellKey)
	}
	fact := getOutput.Spell

	// The analyzer already resolves overrides and upcasting into a formula
	analysis := spelldpr.AnalyzeAt(fact, dnd5e.DefaultCombatContext(), input.SlotLevel)
	if !analysis.Damage.HasDamage {
		return nil, errors.InvalidArgumentf("spell %s has no damage to roll: %s", fact.Key, analysis.Damage.Note)
	}
	notation := analysis.Damage.BaseDamage

	expr, err := dice.Parse(notation)
	if err != nil {
		return nil, err
	}

	times := input.Times
	if times == 0 {
		times = 1
	}

	rolls := make([]*dicesession.DiceRoll, 0, times)
	values := make([]dicesession.DiceRoll, 0, times)
	for i := 0; i < times; i++ {
		description := fact.Name
		if times > 1 {
			description = fmt.Sprintf("%s (target %d)", fact.Name, i+1)
		}
		roll, err := o.roll(expr, notation, description)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
		values = append(values, *roll)
	}

	sessionContext := input.Context
	if sessionContext == "" {
		sessionContext = entityContext(fact)
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  sessionContext,
		Rolls:    values,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store spell rolls")
	}

	slog.Info("Spell damage rolled",
		"entity_id", input.EntityID,
		"spell", fact.Key,
		"slot_level", input.SlotLevel,
		"notation", notation,
		"rolls", len(rolls),
	)

	return &RollSpellOutput{
		Notation: notation,
		Rolls:    rolls,
		Session:  appendOutput.Session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

// roll evaluates expr once and flattens the per-term faces
func (o *orchestrator) roll(expr *dice.Expression, notation, description string) (*dicesession.DiceRoll, error) {
	if err := checkRollable(expr, notation); err != nil {
		return nil, err
	}

	result, err := dice.Roll(expr, o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    notation,
		Expected:    expr.Average(),
		Description: description,
		// nolint:gosec // bounded by checkRollable
		Modifier: int32(result.Modifier),
		// nolint:gosec // bounded by checkRollable
		Total: int32(result.Total),
	}
	for _, term := range result.Terms {
		roll.Dice = append(roll.Dice, toInt32(term.Rolls)...)
		roll.Dropped = append(roll.Dropped, toInt32(term.Dropped)...)
	}
	roll.DiceTotal = roll.Total - roll.Modifier

	return roll, nil
}

// entityContext is the default session context for rolls made on behalf of
// an entity
func entityContext(entity core.Entity) string {
	return entity.GetType() + ":" + entity.GetID()
}

// checkRollable rejects expressions whose dice or results do not fit a
// session roll. Totals are stored as int32.
func checkRollable(expr *dice.Expression, notation string) error {
	if expr.Modifier < math.MinInt32 || expr.Modifier > math.MaxInt32 {
		return errors.InvalidArgumentf("modifier in %q is out of range", notation)
	}

	count := 0
	for _, term := range expr.Terms {
		if term.Sides > MaxDieSides {
			return errors.InvalidArgumentf("d%d in %q exceeds %d sides", term.Sides, notation, MaxDieSides)
		}
		if term.Count > MaxRollDice-count {
			return errors.InvalidArgumentf("%q rolls more than %d dice", notation, MaxRollDice)
		}
		count += term.Count
	}

	if expr.Minimum() < math.MinInt32 || expr.Maximum() > math.MaxInt32 {
		return errors.InvalidArgumentf("result of %q is out of range", notation)
	}
	return nil
}

func toInt32(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		// nolint:gosec // die faces are small
		out[i] = int32(v)
	}
	return out
}

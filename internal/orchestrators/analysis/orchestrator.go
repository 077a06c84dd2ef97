// Package analysis is the service layer around the analyzers: it resolves
// spell facts from the store, fans analysis out over goroutines and imports
// SRD content.
package analysis

//go:generate mockgen -destination=mock/mock_service.go -package=analysismock github.com/KirkDiggler/rpg-dpr/internal/orchestrators/analysis Service

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/breakpoint"
	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/spelldpr"
	"github.com/KirkDiggler/rpg-dpr/internal/clients/external"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/tracing"
	"github.com/KirkDiggler/rpg-dpr/internal/repositories/spell"
)

const (
	// DefaultWorkers bounds concurrent analyses
	DefaultWorkers = 8

	// DefaultImportRate is SRD requests per second during import
	DefaultImportRate = 10
)

// Service defines the analysis operations
type Service interface {
	AnalyzeSpells(ctx context.Context, input *AnalyzeSpellsInput) (*AnalyzeSpellsOutput, error)
	CompareSpells(ctx context.Context, input *CompareSpellsInput) (*CompareSpellsOutput, error)
	BestForSlot(ctx context.Context, input *BestForSlotInput) (*BestForSlotOutput, error)
	CantripScaling(ctx context.Context, input *CantripScalingInput) (*CantripScalingOutput, error)
	Breakpoints(ctx context.Context, input *BreakpointsInput) (*BreakpointsOutput, error)

	// ImportSpells copies SRD spells into the store
	ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportSpellsOutput, error)
}

// Config holds the dependencies for the analysis orchestrator
type Config struct {
	SpellRepo spell.Repository
	// ExternalClient is only needed for ImportSpells
	ExternalClient external.Client
	IDGenerator    idgen.Generator
	// Limiter paces SRD requests. Defaults to DefaultImportRate per second.
	Limiter *rate.Limiter
	Workers int
	Tracer  trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Workers < 0 {
		vb.Field("Workers", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	spellRepo      spell.Repository
	externalClient external.Client
	idGen          idgen.Generator
	limiter        *rate.Limiter
	workers        int
	tracer         trace.Tracer
}

// NewOrchestrator creates a new analysis orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		spellRepo:      cfg.SpellRepo,
		externalClient: cfg.ExternalClient,
		idGen:          cfg.IDGenerator,
		limiter:        cfg.Limiter,
		workers:        cfg.Workers,
		tracer:         cfg.Tracer,
	}
	if o.limiter == nil {
		o.limiter = rate.NewLimiter(rate.Limit(DefaultImportRate), 1)
	}
	if o.workers == 0 {
		o.workers = DefaultWorkers
	}
	if o.tracer == nil {
		o.tracer = tracing.Tracer("analysis")
	}

	return o, nil
}

func (o *orchestrator) AnalyzeSpells(ctx context.Context, input *AnalyzeSpellsInput) (*AnalyzeSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SlotLevel < 0 || input.SlotLevel > 9 {
		return nil, errors.InvalidArgumentf("slot level %d is outside 0-9", input.SlotLevel)
	}

	ctx, span := o.tracer.Start(ctx, "analysis.AnalyzeSpells")
	defer span.End()

	facts, missing, err := o.resolveFacts(ctx, input.Keys, input.Facts)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("spells", len(facts)),
		attribute.Int("missing", len(missing)),
		attribute.Int("slot_level", input.SlotLevel),
	)

	combat := combatContext(input.Context)
	results, err := o.analyzeAll(ctx, facts, func(f *dnd5e.SpellFact) *dnd5e.SpellAnalysis {
		if input.SlotLevel > 0 {
			return spelldpr.AnalyzeAt(f, combat, input.SlotLevel)
		}
		return spelldpr.Analyze(f, combat)
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return &AnalyzeSpellsOutput{
		Results: results,
		Missing: missing,
	}, nil
}

func (o *orchestrator) CompareSpells(ctx context.Context, input *CompareSpellsInput) (*CompareSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "analysis.CompareSpells")
	defer span.End()

	facts, missing, err := o.resolveFacts(ctx, input.Keys, input.Facts)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	if len(facts) == 0 {
		return nil, errors.InvalidArgument("no spells to compare")
	}
	span.SetAttributes(attribute.Int("spells", len(facts)))

	return &CompareSpellsOutput{
		Comparison: spelldpr.Compare(facts, combatContext(input.Context)),
		Missing:    missing,
	}, nil
}

func (o *orchestrator) BestForSlot(ctx context.Context, input *BestForSlotInput) (*BestForSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("slot_level", input.SlotLevel, 1, 9, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "analysis.BestForSlot",
		trace.WithAttributes(attribute.Int("slot_level", input.SlotLevel)))
	defer span.End()

	maxLevel := input.SlotLevel
	listOutput, err := o.spellRepo.List(ctx, spell.ListInput{
		MinLevel: 1,
		MaxLevel: &maxLevel,
		Class:    input.Class,
	})
	if err != nil {
		recordError(span, err)
		return nil, errors.Wrap(err, "failed to list spells")
	}

	results := spelldpr.BestForSlot(listOutput.Spells, input.SlotLevel, combatContext(input.Context))
	slog.Info("Ranked spells for slot",
		"slot_level", input.SlotLevel,
		"class", input.Class,
		"candidates", len(listOutput.Spells),
		"results", len(results),
	)

	return &BestForSlotOutput{Results: results}, nil
}

func (o *orchestrator) CantripScaling(ctx context.Context, input *CantripScalingInput) (*CantripScalingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	fact := input.Fact
	if fact == nil {
		if input.Key == "" {
			return nil, errors.InvalidArgument("key or fact is required")
		}
		getOutput, err := o.spellRepo.Get(ctx, spell.GetInput{Key: input.Key})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get spell %s", input.Key)
		}
		fact = getOutput.Spell
	}
	if !fact.IsCantrip() {
		return nil, errors.InvalidArgumentf("%s is a level %d spell, not a cantrip", fact.Key, fact.Level)
	}

	return &CantripScalingOutput{
		Tiers: spelldpr.CantripScaling(fact, combatContext(input.Context)),
	}, nil
}

func (o *orchestrator) Breakpoints(ctx context.Context, input *BreakpointsInput) (*BreakpointsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	_, span := o.tracer.Start(ctx, "analysis.Breakpoints",
		trace.WithAttributes(
			attribute.String("class", input.Character.Class),
			attribute.Int("level", input.Character.Level),
		))
	defer span.End()

	report, err := breakpoint.Calculate(input.Character)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return &BreakpointsOutput{
		Report:     report,
		CheatSheet: breakpoint.NewCheatSheet(input.Character, report),
	}, nil
}

// resolveFacts returns the given facts followed by the stored ones. Unknown
// keys are reported, not fatal.
func (o *orchestrator) resolveFacts(
	ctx context.Context,
	keys []string,
	facts []*dnd5e.SpellFact,
) ([]*dnd5e.SpellFact, []string, error) {
	out := make([]*dnd5e.SpellFact, 0, len(facts)+len(keys))
	for _, f := range facts {
		if f != nil {
			out = append(out, f)
		}
	}

	var missing []string
	for _, key := range keys {
		getOutput, err := o.spellRepo.Get(ctx, spell.GetInput{Key: key})
		if err != nil {
			if errors.IsNotFound(err) {
				missing = append(missing, key)
				continue
			}
			return nil, nil, errors.Wrapf(err, "failed to get spell %s", key)
		}
		out = append(out, getOutput.Spell)
	}

	if len(missing) > 0 {
		slog.Warn("Spells not in store", "keys", missing)
	}
	return out, missing, nil
}

// analyzeAll runs fn over facts with at most o.workers goroutines. Results
// keep the input order.
func (o *orchestrator) analyzeAll(
	ctx context.Context,
	facts []*dnd5e.SpellFact,
	fn func(*dnd5e.SpellFact) *dnd5e.SpellAnalysis,
) ([]*dnd5e.SpellAnalysis, error) {
	results := make([]*dnd5e.SpellAnalysis, len(facts))
	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup

	for i, fact := range facts {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "analysis canceled")
		}

		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "analysis canceled")
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, f *dnd5e.SpellFact) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = fn(f)
		}(i, fact)
	}

	wg.Wait()
	return results, nil
}

func combatContext(c *dnd5e.CombatContext) dnd5e.CombatContext {
	if c == nil {
		return dnd5e.DefaultCombatContext()
	}
	return *c
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, errors.GetMessage(err))
}

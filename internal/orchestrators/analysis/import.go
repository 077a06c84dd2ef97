package analysis

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-dpr/internal/clients/external"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/repositories/spell"
)

// maxFetchAttempts bounds SRD requests per spell when the failure is retryable
const maxFetchAttempts = 2

// ImportSpells walks the SRD spell list one request at a time under the
// rate limiter. A spell that fails to load is recorded and skipped; a store
// failure stops the run.
func (o *orchestrator) ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportSpellsOutput, error) {
	if input == nil {
		input = &ImportSpellsInput{}
	}
	if o.externalClient == nil {
		return nil, errors.FailedPrecondition("no SRD client configured")
	}

	out := &ImportSpellsOutput{ImportID: o.idGen.Generate()}

	ctx, span := o.tracer.Start(ctx, "analysis.ImportSpells")
	defer span.End()
	span.SetAttributes(attribute.String("import_id", out.ImportID))

	refs, err := o.externalClient.ListSpellRefs(ctx, &external.ListSpellsInput{
		Level: input.Level,
		Class: strings.ToLower(input.Class),
	})
	if err != nil {
		recordError(span, err)
		return nil, errors.Wrap(err, "failed to list SRD spells")
	}

	slog.Info("Importing SRD spells", "import_id", out.ImportID, "count", len(refs))

	for _, ref := range refs {
		if err := o.limiter.Wait(ctx); err != nil {
			recordError(span, err)
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "import canceled")
		}

		fact, err := o.fetchSpell(ctx, ref.Key)
		if err != nil {
			if ctx.Err() != nil {
				recordError(span, err)
				return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "import canceled")
			}
			slog.Warn("Failed to load SRD spell", "import_id", out.ImportID, "spell", ref.Key, "error", err)
			out.Failed = append(out.Failed, ref.Key)
			continue
		}
		if input.DamageOnly && fact.DamageRoll == "" {
			out.Skipped = append(out.Skipped, ref.Key)
			continue
		}

		putOutput, err := o.spellRepo.Put(ctx, spell.PutInput{Spell: fact})
		if err != nil {
			recordError(span, err)
			return nil, errors.Wrapf(err, "failed to store spell %s", ref.Key)
		}
		if putOutput.Created {
			out.Created++
		} else {
			out.Updated++
		}
	}

	span.SetAttributes(
		attribute.Int("created", out.Created),
		attribute.Int("updated", out.Updated),
		attribute.Int("failed", len(out.Failed)),
	)
	slog.Info("SRD import finished",
		"import_id", out.ImportID,
		"created", out.Created,
		"updated", out.Updated,
		"skipped", len(out.Skipped),
		"failed", len(out.Failed),
	)

	return out, nil
}

// fetchSpell loads one SRD spell, repeating the request under the limiter
// while the failure is retryable
func (o *orchestrator) fetchSpell(ctx context.Context, key string) (*dnd5e.SpellFact, error) {
	var err error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		if attempt > 1 {
			if waitErr := o.limiter.Wait(ctx); waitErr != nil {
				return nil, waitErr
			}
		}

		var fact *dnd5e.SpellFact
		fact, err = o.externalClient.GetSpell(ctx, key)
		if err == nil {
			return fact, nil
		}
		if !errors.IsRetryable(err) {
			return nil, err
		}
		slog.Debug("Retrying SRD spell", "spell", key, "attempt", attempt, "error", err)
	}
	return nil, err
}

package analysis_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dpr/internal/clients/external"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/analysis"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dpr/internal/repositories/spell"
	"github.com/KirkDiggler/rpg-dpr/internal/testutils"
)

func (s *OrchestratorTestSuite) TestImportSpells() {
	level := 3
	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), &external.ListSpellsInput{Level: &level, Class: "wizard"}).
		Return([]external.SpellRef{
			{Key: "fireball", Name: "Fireball"},
			{Key: "lightning-bolt", Name: "Lightning Bolt"},
		}, nil)

	lightning := testutils.Fireball()
	lightning.Key = "lightning-bolt"
	lightning.Name = "Lightning Bolt"

	gomock.InOrder(
		s.mockExternal.EXPECT().GetSpell(gomock.Any(), "fireball").Return(testutils.Fireball(), nil),
		s.mockSpells.EXPECT().
			Put(gomock.Any(), spell.PutInput{Spell: testutils.Fireball()}).
			Return(&spell.PutOutput{Created: true}, nil),
		s.mockExternal.EXPECT().GetSpell(gomock.Any(), "lightning-bolt").Return(lightning, nil),
		s.mockSpells.EXPECT().
			Put(gomock.Any(), spell.PutInput{Spell: lightning}).
			Return(&spell.PutOutput{Created: false}, nil),
	)

	out, err := s.service.ImportSpells(s.ctx, &analysis.ImportSpellsInput{Level: &level, Class: "Wizard"})
	s.Require().NoError(err)
	s.Equal("import_1", out.ImportID)
	s.Equal(1, out.Created)
	s.Equal(1, out.Updated)
	s.Empty(out.Failed)
	s.Empty(out.Skipped)
}

func (s *OrchestratorTestSuite) TestImportSpellsRecordsFailures() {
	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), gomock.Any()).
		Return([]external.SpellRef{{Key: "wish"}, {Key: "fire-bolt"}}, nil)
	s.mockExternal.EXPECT().
		GetSpell(gomock.Any(), "wish").
		Return(nil, errors.Unavailable("SRD lookup failed")).
		Times(2)
	s.mockExternal.EXPECT().
		GetSpell(gomock.Any(), "fire-bolt").
		Return(testutils.FireBolt(), nil)
	s.mockSpells.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		Return(&spell.PutOutput{Created: true}, nil)

	out, err := s.service.ImportSpells(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]string{"wish"}, out.Failed)
	s.Equal(1, out.Created)
}

func (s *OrchestratorTestSuite) TestImportSpellsRetriesTransientFailures() {
	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), gomock.Any()).
		Return([]external.SpellRef{{Key: "fireball"}, {Key: "wish"}}, nil)
	gomock.InOrder(
		s.mockExternal.EXPECT().
			GetSpell(gomock.Any(), "fireball").
			Return(nil, errors.ResourceExhausted("rate limited")),
		s.mockExternal.EXPECT().
			GetSpell(gomock.Any(), "fireball").
			Return(testutils.Fireball(), nil),
	)
	// not found is final
	s.mockExternal.EXPECT().
		GetSpell(gomock.Any(), "wish").
		Return(nil, errors.NotFound("no such spell")).
		Times(1)
	s.mockSpells.EXPECT().
		Put(gomock.Any(), spell.PutInput{Spell: testutils.Fireball()}).
		Return(&spell.PutOutput{Created: true}, nil)

	out, err := s.service.ImportSpells(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(1, out.Created)
	s.Equal([]string{"wish"}, out.Failed)
}

func (s *OrchestratorTestSuite) TestImportSpellsDamageOnly() {
	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), gomock.Any()).
		Return([]external.SpellRef{{Key: "hold-person"}, {Key: "magic-missile"}}, nil)
	s.mockExternal.EXPECT().GetSpell(gomock.Any(), "hold-person").Return(testutils.HoldPerson(), nil)
	s.mockExternal.EXPECT().GetSpell(gomock.Any(), "magic-missile").Return(testutils.MagicMissile(), nil)
	s.mockSpells.EXPECT().
		Put(gomock.Any(), spell.PutInput{Spell: testutils.MagicMissile()}).
		Return(&spell.PutOutput{Created: true}, nil)

	out, err := s.service.ImportSpells(s.ctx, &analysis.ImportSpellsInput{DamageOnly: true})
	s.Require().NoError(err)
	s.Equal([]string{"hold-person"}, out.Skipped)
	s.Equal(1, out.Created)
}

func (s *OrchestratorTestSuite) TestImportSpellsStoreFailureStops() {
	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), gomock.Any()).
		Return([]external.SpellRef{{Key: "fireball"}, {Key: "fire-bolt"}}, nil)
	s.mockExternal.EXPECT().GetSpell(gomock.Any(), "fireball").Return(testutils.Fireball(), nil)
	s.mockSpells.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.service.ImportSpells(s.ctx, &analysis.ImportSpellsInput{})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to store spell fireball")
}

func (s *OrchestratorTestSuite) TestImportSpellsListFailure() {
	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("fighter has no spell list"))

	_, err := s.service.ImportSpells(s.ctx, &analysis.ImportSpellsInput{Class: dnd5e.ClassFighter})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestImportSpellsCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockExternal.EXPECT().
		ListSpellRefs(gomock.Any(), gomock.Any()).
		Return([]external.SpellRef{{Key: "fireball"}}, nil)

	_, err := s.service.ImportSpells(ctx, &analysis.ImportSpellsInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestImportSpellsWithoutClient() {
	service, err := analysis.NewOrchestrator(&analysis.Config{
		SpellRepo:   s.mockSpells,
		IDGenerator: idgen.NewSequential(idgen.PrefixImport),
	})
	s.Require().NoError(err)

	_, err = service.ImportSpells(s.ctx, &analysis.ImportSpellsInput{})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

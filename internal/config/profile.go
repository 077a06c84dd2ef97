package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/rpg-dpr/internal/engine"
	"github.com/KirkDiggler/rpg-dpr/internal/entities"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// CombatProfile is the TOML form of a combat context. Unset keys keep the
// default context's value, except that proficiency_bonus follows
// caster_level and ability_modifier follows ability_score when only the
// latter is given.
//
//	proficiency_bonus = 4
//	ability_modifier = 5
//	caster_level = 9
//	target_ac = 17
//	expected_targets = 3
//
//	[target_saves]
//	dexterity = 5
type CombatProfile struct {
	ProficiencyBonus   *int         `toml:"proficiency_bonus"`
	AbilityModifier    *int         `toml:"ability_modifier"`
	AbilityScore       *int         `toml:"ability_score"`
	CasterLevel        *int         `toml:"caster_level"`
	TargetAC           *int         `toml:"target_ac"`
	TargetSaves        *SaveProfile `toml:"target_saves"`
	ExpectedTargets    *int         `toml:"expected_targets"`
	ExpectedEncounters *int         `toml:"expected_encounters"`
	Clustered          *bool        `toml:"clustered"`
}

// SaveProfile overrides individual save bonuses
type SaveProfile struct {
	Strength     *int `toml:"strength"`
	Dexterity    *int `toml:"dexterity"`
	Constitution *int `toml:"constitution"`
	Intelligence *int `toml:"intelligence"`
	Wisdom       *int `toml:"wisdom"`
	Charisma     *int `toml:"charisma"`
}

// CombatContext applies the profile over the default context
func (p *CombatProfile) CombatContext() (dnd5e.CombatContext, error) {
	ctx := dnd5e.DefaultCombatContext()
	if p == nil {
		return ctx, nil
	}

	setInt(&ctx.CasterLevel, p.CasterLevel)
	if p.ProficiencyBonus == nil && p.CasterLevel != nil {
		ctx.ProficiencyBonus = engine.ProficiencyBonus(*p.CasterLevel)
	}
	setInt(&ctx.ProficiencyBonus, p.ProficiencyBonus)
	if p.AbilityModifier == nil && p.AbilityScore != nil {
		ctx.AbilityModifier = engine.AbilityModifier(*p.AbilityScore)
	}
	setInt(&ctx.AbilityModifier, p.AbilityModifier)
	setInt(&ctx.TargetAC, p.TargetAC)
	setInt(&ctx.ExpectedTargets, p.ExpectedTargets)
	setInt(&ctx.ExpectedEncounters, p.ExpectedEncounters)
	if p.Clustered != nil {
		ctx.Clustered = *p.Clustered
	}
	if s := p.TargetSaves; s != nil {
		setInt(&ctx.TargetSaves.Strength, s.Strength)
		setInt(&ctx.TargetSaves.Dexterity, s.Dexterity)
		setInt(&ctx.TargetSaves.Constitution, s.Constitution)
		setInt(&ctx.TargetSaves.Intelligence, s.Intelligence)
		setInt(&ctx.TargetSaves.Wisdom, s.Wisdom)
		setInt(&ctx.TargetSaves.Charisma, s.Charisma)
	}

	if err := ctx.Validate(); err != nil {
		return dnd5e.CombatContext{}, err
	}
	return ctx, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ParseCombatProfile decodes a TOML profile into a combat context
func ParseCombatProfile(data []byte) (dnd5e.CombatContext, error) {
	var profile CombatProfile
	if err := decodeStrict(data, &profile); err != nil {
		return dnd5e.CombatContext{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse combat profile")
	}
	return profile.CombatContext()
}

// LoadCombatProfile reads a TOML profile. An empty path yields the default
// context.
func LoadCombatProfile(path string) (dnd5e.CombatContext, error) {
	if path == "" {
		return dnd5e.DefaultCombatContext(), nil
	}
	data, err := readFile(path)
	if err != nil {
		return dnd5e.CombatContext{}, err
	}
	return ParseCombatProfile(data)
}

// ParseCharacter decodes and validates a TOML character
//
//	name = "Brunhild"
//	class = "fighter"
//	level = 5
//	attack_bonus = 7
//	base_damage = 10
//	feats = ["GWM"]
//
//	[resources]
//	expected_encounters = 3
func ParseCharacter(data []byte) (*entities.Character, error) {
	var character entities.Character
	if err := decodeStrict(data, &character); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse character")
	}
	if err := character.Validate(); err != nil {
		return nil, err
	}
	return &character, nil
}

// LoadCharacter reads a TOML character file
func LoadCharacter(path string) (*entities.Character, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCharacter(data)
}

// decodeStrict rejects unknown keys
func decodeStrict(data []byte, v any) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

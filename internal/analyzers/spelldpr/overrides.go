package spelldpr

import "github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"

// damageOverride corrects spells whose damage roll text does not capture
// the real formula
type damageOverride struct {
	Damage      string
	SlotScaling string
	// ChainChance is the chance a successful hit repeats on a new target
	ChainChance      float64
	ChainDescription string
}

var damageOverrides = map[string]damageOverride{
	"chaos-bolt": {
		Damage:           "2d8+1d6",
		SlotScaling:      "1d6",
		ChainChance:      0.125,
		ChainDescription: "When both d8s match, leaps to another target within 30ft",
	},
}

// Spells whose caster picks the damage type when casting
var damageTypeChoices = map[string][]string{
	"chromatic-orb":    {dnd5e.DamageAcid, dnd5e.DamageCold, dnd5e.DamageFire, dnd5e.DamageLightning, dnd5e.DamagePoison, dnd5e.DamageThunder},
	"dragons-breath":   {dnd5e.DamageAcid, dnd5e.DamageCold, dnd5e.DamageFire, dnd5e.DamageLightning, dnd5e.DamagePoison},
	"elemental-bane":   {dnd5e.DamageAcid, dnd5e.DamageCold, dnd5e.DamageFire, dnd5e.DamageLightning},
	"elemental-weapon": {dnd5e.DamageAcid, dnd5e.DamageCold, dnd5e.DamageFire, dnd5e.DamageLightning, dnd5e.DamageThunder},
	"glyph-of-warding": {dnd5e.DamageAcid, dnd5e.DamageCold, dnd5e.DamageFire, dnd5e.DamageLightning, dnd5e.DamageThunder},
	"spirit-shroud":    {dnd5e.DamageCold, dnd5e.DamageNecrotic, dnd5e.DamageRadiant},
	"flame-blade":      {dnd5e.DamageFire},
}

// Types a randomly typed spell such as chaos bolt can roll
var randomDamageTypes = []string{
	dnd5e.DamageAcid,
	dnd5e.DamageCold,
	dnd5e.DamageFire,
	dnd5e.DamageForce,
	dnd5e.DamageLightning,
	dnd5e.DamagePoison,
	dnd5e.DamagePsychic,
	dnd5e.DamageThunder,
}

package dnd5e

// EntityTypeSpell is the core.Entity type of a SpellFact
const EntityTypeSpell = "spell"

// Ability is one of the six ability scores, named as save text uses them
type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityAliases = map[string]Ability{
	"str": AbilityStrength,
	"dex": AbilityDexterity,
	"con": AbilityConstitution,
	"int": AbilityIntelligence,
	"wis": AbilityWisdom,
	"cha": AbilityCharisma,
}

// Class names as they appear in character files and SRD data
const (
	ClassBarbarian = "barbarian"
	ClassBard      = "bard"
	ClassCleric    = "cleric"
	ClassDruid     = "druid"
	ClassFighter   = "fighter"
	ClassMonk      = "monk"
	ClassPaladin   = "paladin"
	ClassRanger    = "ranger"
	ClassRogue     = "rogue"
	ClassSorcerer  = "sorcerer"
	ClassWarlock   = "warlock"
	ClassWizard    = "wizard"
)

// Feats with a power attack trade
const (
	FeatGreatWeaponMaster = "GWM"
	FeatSharpshooter      = "Sharpshooter"
)

// Damage types
const (
	DamageAcid        = "acid"
	DamageBludgeoning = "bludgeoning"
	DamageCold        = "cold"
	DamageFire        = "fire"
	DamageForce       = "force"
	DamageLightning   = "lightning"
	DamageNecrotic    = "necrotic"
	DamagePiercing    = "piercing"
	DamagePoison      = "poison"
	DamagePsychic     = "psychic"
	DamageRadiant     = "radiant"
	DamageSlashing    = "slashing"
	DamageThunder     = "thunder"
)

// ConditionTag is a machine readable hint about when a spell shines
type ConditionTag string

const (
	ConditionMaintainConcentration ConditionTag = "maintain_concentration"
	ConditionTargetLowDex          ConditionTag = "target_low_dex"
	ConditionTargetLowCon          ConditionTag = "target_low_con"
	ConditionTargetLowWis          ConditionTag = "target_low_wis"
	ConditionTargetLowInt          ConditionTag = "target_low_int"
	ConditionMultipleTargets       ConditionTag = "multiple_targets"
	ConditionControlSpell          ConditionTag = "control_spell"
	ConditionBonusAction           ConditionTag = "bonus_action"
)

// EfficiencyRating buckets damage against the slot level baseline
type EfficiencyRating string

const (
	EfficiencyExcellent EfficiencyRating = "excellent"
	EfficiencyGood      EfficiencyRating = "good"
	EfficiencyAverage   EfficiencyRating = "average"
	EfficiencyPoor      EfficiencyRating = "poor"
)

package external

// ListSpellsInput filters the SRD spell listing. Class is a lower case SRD
// class index such as "wizard".
type ListSpellsInput struct {
	Level *int
	Class string
}

// SpellRef is the key and name the SRD returns before details are loaded
type SpellRef struct {
	Key  string
	Name string
}

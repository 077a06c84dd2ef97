package config

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// ParseSpells decodes a JSON array of spells or a single spell object
func ParseSpells(data []byte) ([]*dnd5e.SpellFact, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.InvalidArgument("spell file is empty")
	}

	var facts []*dnd5e.SpellFact
	if data[0] == '[' {
		if err := json.Unmarshal(data, &facts); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse spells")
		}
	} else {
		var fact dnd5e.SpellFact
		if err := json.Unmarshal(data, &fact); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse spell")
		}
		facts = append(facts, &fact)
	}

	vb := errors.NewValidationBuilder()
	for i, f := range facts {
		if f == nil || f.Key == "" {
			vb.Fieldf("key", "spell %d has no key", i)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return facts, nil
}

// LoadSpells reads a JSON spell file
func LoadSpells(path string) ([]*dnd5e.SpellFact, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSpells(data)
}

// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-dpr/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	internalDnd5e "github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// SourceSRD marks facts converted from the SRD API
const SourceSRD = "srd"

// D&D 5e class name mappings for spell filtering
var dnd5eClassNames = map[string]string{
	"bard":     "bard",
	"cleric":   "cleric",
	"druid":    "druid",
	"paladin":  "paladin",
	"ranger":   "ranger",
	"sorcerer": "sorcerer",
	"warlock":  "warlock",
	"wizard":   "wizard",
}

// Client reads spells from the SRD and converts them to spell facts
type Client interface {
	// GetSpell fetches and converts one spell
	GetSpell(ctx context.Context, key string) (*internalDnd5e.SpellFact, error)

	// ListSpellRefs returns keys only, without loading details
	ListSpellRefs(ctx context.Context, input *ListSpellsInput) ([]SpellRef, error)

	// ListSpells returns every matching spell with full details
	// Details are loaded concurrently
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*internalDnd5e.SpellFact, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Wrap with caching for better performance
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) GetSpell(_ context.Context, key string) (*internalDnd5e.SpellFact, error) {
	apiKey := toAPIKey(key)
	if apiKey == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.dnd5eClient.GetSpell(apiKey)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+apiKey)
	}

	return ConvertSpell(spell)
}

func (c *client) ListSpellRefs(_ context.Context, input *ListSpellsInput) ([]SpellRef, error) {
	var dnd5eInput *dnd5e.ListSpellsInput
	if input != nil {
		dnd5eInput = &dnd5e.ListSpellsInput{}
		if input.Level != nil {
			level := *input.Level
			dnd5eInput.Level = &level
		}
		if input.Class != "" {
			className, exists := dnd5eClassNames[strings.ToLower(input.Class)]
			if !exists {
				return nil, errors.InvalidArgumentf("%s is not a spellcasting class", input.Class)
			}
			dnd5eInput.Class = className
		}
	}

	slog.Info("Calling D&D 5e API to list spells")
	refs, err := c.dnd5eClient.ListSpells(dnd5eInput)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells from D&D 5e API")
	}
	slog.Info("Got spell references", "count", len(refs))

	out := make([]SpellRef, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, SpellRef{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*internalDnd5e.SpellFact, error) {
	refs, err := c.ListSpellRefs(ctx, input)
	if err != nil {
		return nil, err
	}

	slog.Info("Loading full details for each spell concurrently")
	spells := make([]*internalDnd5e.SpellFact, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			// cached after first call
			spell, err := c.dnd5eClient.GetSpell(key)
			if err != nil {
				slog.Error("Failed to get spell details", "spell", key, "error", err)
				errChan <- errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+key)
				return
			}

			fact, err := ConvertSpell(spell)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to convert spell %s", key)
				return
			}
			spells[idx] = fact
			slog.Debug("Loaded spell details", "spell", key)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return spells, nil
}

// toAPIKey accepts our stored keys ("srd_fireball") and plain SRD indexes
func toAPIKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "srd_")
	return strings.ReplaceAll(key, "_", "-")
}

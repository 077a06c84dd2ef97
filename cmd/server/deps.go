package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/rpg-dpr/internal/clients/external"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/analysis"
	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dpr/internal/pkg/tracing"
	redisclient "github.com/KirkDiggler/rpg-dpr/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-dpr/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-dpr/internal/repositories/spell"
)

// services is everything a command may need. Redis connects lazily, so
// commands that never touch the store never dial it.
type services struct {
	redis    redisclient.Client
	spells   spell.Repository
	analysis analysis.Service
	dice     dice.Service
	shutdown tracing.ShutdownFunc
}

type servicesOptions struct {
	// withSRD wires the SRD client for imports
	withSRD bool
}

func newServices(ctx context.Context, opts servicesOptions) (*services, error) {
	shutdown, err := tracing.Setup(ctx, tracing.Config{
		Endpoint:    cfg.OTLPEndpoint,
		SampleRatio: cfg.TraceSampleRate,
	})
	if err != nil {
		return nil, err
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	spellRepo, err := spell.NewRedis(&spell.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell repository")
	}

	sessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: redisClient,
		Clock:  clock.New(),
		TTL:    cfg.DiceSessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice session repository")
	}

	var srd external.Client
	if opts.withSRD {
		srd, err = external.New(&external.Config{
			BaseURL:  cfg.SRDBaseURL,
			CacheTTL: cfg.SRDCacheTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create SRD client")
		}
	}

	analysisService, err := analysis.NewOrchestrator(&analysis.Config{
		SpellRepo:      spellRepo,
		ExternalClient: srd,
		IDGenerator:    idgen.NewUUID(idgen.PrefixImport),
		Limiter:        rate.NewLimiter(rate.Limit(cfg.SRDRate), 1),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create analysis orchestrator")
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: sessionRepo,
		SpellRepo:       spellRepo,
		IDGenerator:     idgen.NewUUID(idgen.PrefixRoll),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice orchestrator")
	}

	return &services{
		redis:    redisClient,
		spells:   spellRepo,
		analysis: analysisService,
		dice:     diceService,
		shutdown: shutdown,
	}, nil
}

func (s *services) Close(ctx context.Context) {
	if err := s.shutdown(ctx); err != nil {
		slog.Warn("Failed to flush traces", "error", err)
	}
	if err := s.redis.Close(); err != nil {
		slog.Warn("Failed to close redis client", "error", err)
	}
}

// outputWriter returns stdout for "" or "-", otherwise a created file
func outputWriter(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}

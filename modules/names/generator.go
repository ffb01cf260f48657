package names

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spinelhq/spinel/pkg/logger"
)

// Completer produces a text completion for a system message and a prompt.
// It is satisfied by pkg/llm.Client.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Generator synthesizes candidate business names. The random source is
// injectable so tests can run deterministically; production callers get a
// time-seeded source.
type Generator struct {
	completer Completer
	log       *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures the generator.
type Option func(*Generator)

// WithRandSource replaces the pseudo-random source.
func WithRandSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// WithLogger supplies a logger; nil keeps logging silent.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGenerator returns a generator backed by the given completion provider.
// The completer may be nil, in which case the AI strategy always degrades to
// the canned fallback list.
func NewGenerator(completer Completer, opts ...Option) *Generator {
	g := &Generator{
		completer: completer,
		log:       slog.New(slog.DiscardHandler),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces names for the request. Strategy dispatch is exhaustive:
// a tag outside the closed set yields ErrUnknownStrategy. The sector strategy
// requires a sector; every other parameter has a usable default.
func (g *Generator) Generate(ctx context.Context, req Request) ([]string, error) {
	req = req.normalized()

	switch req.Type {
	case StrategyAI:
		return g.aiNames(ctx, req), nil
	case StrategySector:
		if req.Sector == "" {
			return nil, ErrSectorRequired
		}
		return g.sectorNames(req.Language, req.Sector, req.Count), nil
	case StrategyAbbreviated:
		return g.abbreviatedNames(req.Language, req.Keywords, req.Count), nil
	case StrategyCompound:
		return g.compoundNames(req.Language, req.Count), nil
	case StrategySmartRandom:
		return g.smartRandomNames(req.Language, req.Count), nil
	case StrategyGeographic:
		return g.geographicNames(req.Language, req.Location, req.Count), nil
	case StrategyLengthBased:
		return g.lengthBasedNames(req.Language, req.Length, req.Count), nil
	case StrategyPersonality:
		return g.personalityNames(req.Language, req.Personality, req.Count), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// pick returns a random element of list.
func (g *Generator) pick(list []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return list[g.rng.Intn(len(list))]
}

// intn returns a random int in [0, n).
func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// randRune returns a random rune of s.
func (g *Generator) randRune(s string) rune {
	runes := []rune(s)
	return runes[g.intn(len(runes))]
}

// capitalize upper-cases the leading letter of each word; Arabic letters have
// no case and pass through unchanged.
func capitalize(s string) string {
	return cases.Title(language.English).String(s)
}

func (g *Generator) logDegradation(ctx context.Context, err error) {
	g.log.WarnContext(ctx, "ai generation degraded to fallback list",
		logger.Component("names"),
		logger.Error(err),
	)
}

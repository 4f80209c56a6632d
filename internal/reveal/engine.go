package reveal

import (
	"time"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// Config is the single parameter set shared by every screen that animates a reveal.
type Config struct {
	Bands        BandTable
	Strip        StripConfig
	SpinDuration time.Duration
}

// DefaultConfig returns the stock band table, a 120/90 strip and a 5s spin.
func DefaultConfig() Config {
	return Config{
		Bands:        DefaultBands(),
		Strip:        DefaultStripConfig(),
		SpinDuration: DefaultSpinDuration,
	}
}

// Engine bundles the selector, strip builder and timing.
type Engine struct {
	selector *Selector
	builder  *StripBuilder
	spin     time.Duration
}

// NewEngine validates cfg and builds an engine drawing from rng.
func NewEngine(cfg Config, rng RandomSource) (*Engine, error) {
	if len(cfg.Bands) == 0 {
		cfg.Bands = DefaultBands()
	}
	if err := cfg.Bands.Validate(); err != nil {
		return nil, err
	}
	if cfg.SpinDuration <= 0 {
		cfg.SpinDuration = DefaultSpinDuration
	}

	selector := NewSelector(cfg.Bands, rng)
	builder, err := NewStripBuilder(selector, cfg.Strip)
	if err != nil {
		return nil, err
	}
	return &Engine{selector: selector, builder: builder, spin: cfg.SpinDuration}, nil
}

// Selector returns the engine's weighted selector.
func (e *Engine) Selector() *Selector { return e.selector }

// SpinDuration is how long a strip animates before it settles on its own.
func (e *Engine) SpinDuration() time.Duration { return e.spin }

// StripConfig returns the strip length and winner index.
func (e *Engine) StripConfig() StripConfig { return e.builder.Config() }

// Build delegates to the strip builder.
func (e *Engine) Build(contents []domain.Item, override *domain.Item) (Strip, bool) {
	return e.builder.Build(contents, override)
}

// NewReveal builds a strip and loads it into a fresh reveal. It returns
// domain.ErrNoWinner when nothing could be drawn.
func (e *Engine) NewReveal(contents []domain.Item, override *domain.Item) (*Reveal, error) {
	strip, ok := e.Build(contents, override)
	if !ok {
		return nil, domain.ErrNoWinner
	}
	r := New(e.spin)
	if err := r.Load(strip); err != nil {
		return nil, err
	}
	return r, nil
}

// Odds returns per-item drop chances for contents under the engine's bands.
func (e *Engine) Odds(contents []domain.Item) []ItemOdds {
	return Odds(e.selector.Bands(), contents)
}

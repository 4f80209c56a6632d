package reveal

import (
	"fmt"
	"log/slog"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// Source records who decided a strip's winner.
type Source string

// Strip is the decorative sequence animated during a reveal.
// Items[WinIndex] is always Winner; every other slot is decoration and may repeat.
type Strip struct {
	Items    []domain.Item `json:"items"`
	WinIndex int           `json:"winIndex"`
	Winner   domain.Item   `json:"winner"`
	Source   Source        `json:"source"`
}

// Len returns the number of cards in the strip.
func (s Strip) Len() int {
	return len(s.Items)
}

// StripConfig parameterizes strip construction.
type StripConfig struct {
	Length   int
	WinIndex int
}

// DefaultStripConfig returns the 120 card strip with the winner at index 90.
func DefaultStripConfig() StripConfig {
	return StripConfig{Length: DefaultStripLength, WinIndex: DefaultWinIndex}
}

// Validate checks 0 <= WinIndex < Length.
func (c StripConfig) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length %d", domain.ErrInvalidStripConfig, c.Length)
	}
	if c.WinIndex < 0 || c.WinIndex >= c.Length {
		return fmt.Errorf("%w: win index %d outside [0, %d)", domain.ErrInvalidStripConfig, c.WinIndex, c.Length)
	}
	return nil
}

// StripBuilder builds fixed-length strips with the winner at a fixed index.
type StripBuilder struct {
	selector *Selector
	cfg      StripConfig
}

// NewStripBuilder validates cfg and returns a builder drawing decoys with selector.
func NewStripBuilder(selector *Selector, cfg StripConfig) (*StripBuilder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &StripBuilder{selector: selector, cfg: cfg}, nil
}

// Config returns the builder configuration.
func (b *StripBuilder) Config() StripConfig {
	return b.cfg
}

// Build draws Length decoys from contents and places the winner at WinIndex.
// A non-nil override is used verbatim as the winner; otherwise the winner is drawn
// locally after the decoys. Empty contents without an override yield no strip.
func (b *StripBuilder) Build(contents []domain.Item, override *domain.Item) (Strip, bool) {
	if len(contents) == 0 && override == nil {
		slog.Debug(LogMsgEmptyContents, "length", b.cfg.Length)
		return Strip{}, false
	}
	if override != nil && len(contents) > 0 && !listed(contents, *override) {
		slog.Warn(LogMsgOverrideNotInSet, "item", override.Name, "contents", len(contents))
	}

	items := make([]domain.Item, b.cfg.Length)
	if len(contents) == 0 {
		// Nothing to decorate with, so the override fills every slot.
		for i := range items {
			items[i] = *override
		}
	} else {
		p := newPool(contents)
		for i := range items {
			items[i] = b.selector.pickFrom(p)
		}
	}

	strip := Strip{Items: items, WinIndex: b.cfg.WinIndex, Source: SourceServer}
	if override != nil {
		strip.Winner = *override
	} else {
		strip.Winner = b.selector.pickFrom(newPool(contents))
		strip.Source = SourceLocal
	}
	strip.Items[strip.WinIndex] = strip.Winner
	return strip, true
}

func listed(contents []domain.Item, item domain.Item) bool {
	for _, c := range contents {
		if c.Same(item) {
			return true
		}
	}
	return false
}

package reveal

import "github.com/samigvnc/csgo-frontend/internal/domain"

// Selector draws one item from a list using tier bands and a uniform pick inside the band.
type Selector struct {
	bands BandTable
	rng   RandomSource
}

// NewSelector builds a selector. A nil rng falls back to DefaultSource.
func NewSelector(bands BandTable, rng RandomSource) *Selector {
	if len(bands) == 0 {
		bands = DefaultBands()
	}
	if rng == nil {
		rng = DefaultSource()
	}
	return &Selector{bands: bands, rng: rng}
}

// Bands returns the table the selector draws with.
func (s *Selector) Bands() BandTable {
	return s.bands
}

// Pick draws one item. It returns false for an empty list.
func (s *Selector) Pick(items []domain.Item) (domain.Item, bool) {
	if len(items) == 0 {
		return domain.Item{}, false
	}
	return s.pickFrom(newPool(items)), true
}

func (s *Selector) pickFrom(p *pool) domain.Item {
	idx := s.bands.index(s.rng.Float64() * RollScale)
	candidates := p.eligible(idx, s.bands[idx])
	return candidates[IntN(s.rng, len(candidates))]
}

// pool memoizes band filtering so a strip of draws filters each band once.
type pool struct {
	all   []domain.Item
	cache map[int][]domain.Item
}

func newPool(items []domain.Item) *pool {
	return &pool{
		all:   items,
		cache: make(map[int][]domain.Item),
	}
}

// eligible returns the band's items in content order, or every item when the band is empty.
func (p *pool) eligible(key int, band TierBand) []domain.Item {
	if cached, ok := p.cache[key]; ok {
		return cached
	}

	wanted := make(map[domain.Rarity]bool, len(band.Rarities))
	for _, r := range band.Rarities {
		wanted[r] = true
	}

	var out []domain.Item
	for _, item := range p.all {
		if wanted[item.Rarity] {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		out = p.all
	}
	p.cache[key] = out
	return out
}

// ItemOdds is the chance (percent) that one draw yields the item at Index of the contents.
type ItemOdds struct {
	Index   int         `json:"index"`
	Item    domain.Item `json:"item"`
	Percent float64     `json:"percent"`
}

// Odds computes the exact per-item drop chance for a content list, fallback included.
// The percentages sum to 100 for any non-empty list.
func Odds(bands BandTable, items []domain.Item) []ItemOdds {
	if len(items) == 0 {
		return nil
	}
	if len(bands) == 0 {
		bands = DefaultBands()
	}

	// Eligibility by position keeps duplicates of the same item apart.
	share := make([]float64, len(items))
	prev := 0.0
	for _, band := range bands {
		width := band.Upper - prev
		prev = band.Upper

		wanted := make(map[domain.Rarity]bool, len(band.Rarities))
		for _, r := range band.Rarities {
			wanted[r] = true
		}
		var idx []int
		for i, item := range items {
			if wanted[item.Rarity] {
				idx = append(idx, i)
			}
		}
		if len(idx) == 0 {
			for i := range items {
				idx = append(idx, i)
			}
		}
		for _, i := range idx {
			share[i] += width / float64(len(idx))
		}
	}

	out := make([]ItemOdds, len(items))
	for i, item := range items {
		out[i] = ItemOdds{Index: i, Item: item, Percent: share[i]}
	}
	return out
}

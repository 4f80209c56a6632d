package reveal

import (
	"fmt"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// TierBand maps a slice of the roll space to the tiers eligible inside it.
type TierBand struct {
	Upper    float64         `json:"upper"`
	Rarities []domain.Rarity `json:"rarities"`
}

// BandTable is ordered from the rarest band to the most common one.
type BandTable []TierBand

// DefaultBands returns the stock table: knife <0.5, covert <2, classified <7,
// restricted <20, milspec <50, consumer or industrial for the rest.
func DefaultBands() BandTable {
	return BandTable{
		{Upper: KnifeBandUpper, Rarities: []domain.Rarity{domain.RarityKnife}},
		{Upper: CovertBandUpper, Rarities: []domain.Rarity{domain.RarityCovert}},
		{Upper: ClassifiedBandUpper, Rarities: []domain.Rarity{domain.RarityClassified}},
		{Upper: RestrictedBandUpper, Rarities: []domain.Rarity{domain.RarityRestricted}},
		{Upper: MilspecBandUpper, Rarities: []domain.Rarity{domain.RarityMilspec}},
		{Upper: CommonBandUpper, Rarities: []domain.Rarity{domain.RarityConsumer, domain.RarityIndustrial}},
	}
}

// Validate checks that ceilings strictly ascend and the last one covers the whole roll space.
func (t BandTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: band table is empty", domain.ErrInvalidInput)
	}

	prev := 0.0
	for i, band := range t {
		if band.Upper <= prev {
			return fmt.Errorf("%w: band %d ceiling %.3f must exceed %.3f", domain.ErrInvalidInput, i, band.Upper, prev)
		}
		if len(band.Rarities) == 0 {
			return fmt.Errorf("%w: band %d has no rarities", domain.ErrInvalidInput, i)
		}
		prev = band.Upper
	}

	if prev != RollScale {
		return fmt.Errorf("%w: last band ceiling is %.3f, want %.0f", domain.ErrInvalidInput, prev, RollScale)
	}
	return nil
}

// Lookup returns the band a roll in [0, RollScale) falls into.
func (t BandTable) Lookup(roll float64) TierBand {
	return t[t.index(roll)]
}

func (t BandTable) index(roll float64) int {
	for i, band := range t {
		if roll < band.Upper {
			return i
		}
	}
	return len(t) - 1
}

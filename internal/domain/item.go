package domain

import (
	"encoding/json"
	"time"
)

// Item is a single reward unit. It is immutable once drawn.
type Item struct {
	ID         string     `json:"id,omitempty"`
	UID        string     `json:"uid,omitempty"` // inventory instance id, empty for catalog items
	Name       string     `json:"name"`
	Rarity     Rarity     `json:"rarity"`
	RarityName string     `json:"rarityName,omitempty"`
	Color      string     `json:"color,omitempty"`
	Price      Money      `json:"price"`
	Image      string     `json:"image,omitempty"`
	Upgraded   bool       `json:"upgraded,omitempty"`
	ObtainedAt *time.Time `json:"obtainedAt,omitempty"`
}

// itemWire mirrors the loose shapes the backend sends for content items.
type itemWire struct {
	ID         string     `json:"id"`
	UID        string     `json:"uid"`
	MongoID    string     `json:"_id"`
	Name       string     `json:"name"`
	Label      string     `json:"label"`
	Rarity     string     `json:"rarity"`
	RarityName string     `json:"rarityName"`
	Color      string     `json:"color"`
	Price      Money      `json:"price"`
	Value      Money      `json:"value"`
	Image      string     `json:"image"`
	Upgraded   bool       `json:"upgraded"`
	ObtainedAt *time.Time `json:"obtainedAt"`
}

// UnmarshalJSON tolerates `_id`, `label`, and `value` aliases.
func (i *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*i = Item{
		ID:         firstNonEmpty(w.ID, w.MongoID),
		UID:        w.UID,
		Name:       firstNonEmpty(w.Name, w.Label),
		Rarity:     ParseRarity(w.Rarity),
		RarityName: w.RarityName,
		Color:      w.Color,
		Price:      w.Price,
		Image:      w.Image,
		Upgraded:   w.Upgraded,
		ObtainedAt: w.ObtainedAt,
	}
	if i.Price == 0 && w.Value != 0 {
		i.Price = w.Value
	}
	return nil
}

// DisplayColor returns the item color, falling back to the tier color.
func (i Item) DisplayColor() string {
	if i.Color != "" {
		return i.Color
	}
	return i.Rarity.Info().Color
}

// Same reports whether two items denote the same catalog entry.
func (i Item) Same(other Item) bool {
	if i.ID != "" || other.ID != "" {
		return i.ID == other.ID
	}
	return i.Name == other.Name && i.Rarity == other.Rarity && i.Price == other.Price
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

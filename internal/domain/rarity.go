package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is an ordered item tier. It drives both drop probability and display styling.
type Rarity string

const (
	RarityConsumer   Rarity = "consumer"
	RarityIndustrial Rarity = "industrial"
	RarityMilspec    Rarity = "milspec"
	RarityRestricted Rarity = "restricted"
	RarityClassified Rarity = "classified"
	RarityCovert     Rarity = "covert"
	RarityKnife      Rarity = "knife"
)

// RarityInfo holds the display attributes of a tier.
type RarityInfo struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Multiplier float64 `json:"multiplier"`
}

// RarityOrder lists the known tiers from most common to rarest.
var RarityOrder = []Rarity{
	RarityConsumer,
	RarityIndustrial,
	RarityMilspec,
	RarityRestricted,
	RarityClassified,
	RarityCovert,
	RarityKnife,
}

var rarityTable = map[Rarity]RarityInfo{
	RarityConsumer:   {Name: "Consumer Grade", Color: "#B0C3D9", Multiplier: 0.5},
	RarityIndustrial: {Name: "Industrial Grade", Color: "#5E98D9", Multiplier: 0.8},
	RarityMilspec:    {Name: "Mil-Spec", Color: "#4B69FF", Multiplier: 1.2},
	RarityRestricted: {Name: "Restricted", Color: "#8847FF", Multiplier: 2},
	RarityClassified: {Name: "Classified", Color: "#D32CE6", Multiplier: 4},
	RarityCovert:     {Name: "Covert", Color: "#EB4B4B", Multiplier: 8},
	RarityKnife:      {Name: "Exceedingly Rare", Color: "#FFD700", Multiplier: 20},
}

// DefaultItemColor is used for tiers the table does not know.
const DefaultItemColor = "#B0C3D9"

// ParseRarity normalizes a backend tier string. Unknown tiers are kept verbatim (lowercased).
func ParseRarity(s string) Rarity {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case "mil-spec", "mil_spec":
		return RarityMilspec
	case "exceedingly rare", "gold":
		return RarityKnife
	}
	return r
}

// Known reports whether r is one of the seven standard tiers.
func (r Rarity) Known() bool {
	_, ok := rarityTable[r]
	return ok
}

// Rank returns the position of r in RarityOrder, or -1 when unknown.
func (r Rarity) Rank() int {
	for i, known := range RarityOrder {
		if known == r {
			return i
		}
	}
	return -1
}

// Info returns the display attributes of r.
func (r Rarity) Info() RarityInfo {
	if info, ok := rarityTable[r]; ok {
		return info
	}
	return RarityInfo{Name: r.Title(), Color: DefaultItemColor, Multiplier: 1}
}

// Title returns the tier name capitalized, e.g. "covert" -> "Covert".
func (r Rarity) Title() string {
	// Casers are stateful, so one is built per call.
	return cases.Title(language.English).String(string(r))
}

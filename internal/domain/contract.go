package domain

// DefaultContractItems is the number of inputs every contract consumes.
const DefaultContractItems = 10

// ContractRule describes one upgrade step between adjacent tiers.
type ContractRule struct {
	From        Rarity `json:"from"`
	To          Rarity `json:"to"`
	SuccessRate int    `json:"successRate"` // percent, 0..100
	Cost        Money  `json:"cost"`
	Required    int    `json:"required"`
}

// ContractResult reports the outcome of a completed contract.
type ContractResult struct {
	Success  bool         `json:"success"`
	Rule     ContractRule `json:"rule"`
	Consumed []Item       `json:"consumed"`
	Reward   *Item        `json:"reward,omitempty"`
	Balance  Money        `json:"balance"`
}

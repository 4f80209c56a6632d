package contract

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/utils"
	"github.com/samigvnc/csgo-frontend/internal/validation"
)

// Rules maps an input tier to its upgrade rule.
type Rules map[domain.Rarity]domain.ContractRule

// DefaultRules is the stock upgrade ladder.
func DefaultRules() Rules {
	return Rules{
		domain.RarityConsumer:   {From: domain.RarityConsumer, To: domain.RarityIndustrial, SuccessRate: 100, Required: domain.DefaultContractItems},
		domain.RarityIndustrial: {From: domain.RarityIndustrial, To: domain.RarityMilspec, SuccessRate: 100, Required: domain.DefaultContractItems},
		domain.RarityMilspec:    {From: domain.RarityMilspec, To: domain.RarityRestricted, SuccessRate: 80, Cost: domain.Dollars(5), Required: domain.DefaultContractItems},
		domain.RarityRestricted: {From: domain.RarityRestricted, To: domain.RarityClassified, SuccessRate: 60, Cost: domain.Dollars(10), Required: domain.DefaultContractItems},
		domain.RarityClassified: {From: domain.RarityClassified, To: domain.RarityCovert, SuccessRate: 40, Cost: domain.Dollars(20), Required: domain.DefaultContractItems},
		domain.RarityCovert:     {From: domain.RarityCovert, To: domain.RarityKnife, SuccessRate: 20, Cost: domain.Dollars(50), Required: domain.DefaultContractItems},
	}
}

// Ordered returns the rules sorted by input tier.
func (r Rules) Ordered() []domain.ContractRule {
	out := make([]domain.ContractRule, 0, len(r))
	for _, tier := range domain.RarityOrder {
		if rule, ok := r[tier]; ok {
			out = append(out, rule)
		}
	}
	return out
}

// Validate checks every rule upgrades to a higher tier with sane numbers.
func (r Rules) Validate() error {
	if len(r) == 0 {
		return errors.New("no contract rules")
	}
	for from, rule := range r {
		switch {
		case rule.From != from:
			return fmt.Errorf("rule keyed %q declares from %q", from, rule.From)
		case rule.To.Rank() <= rule.From.Rank():
			return fmt.Errorf("rule %s -> %s does not upgrade", rule.From, rule.To)
		case rule.SuccessRate < 0 || rule.SuccessRate > 100:
			return fmt.Errorf("rule %s success rate %d outside 0..100", rule.From, rule.SuccessRate)
		case rule.Cost < 0:
			return fmt.Errorf("rule %s has negative cost", rule.From)
		case rule.Required <= 0:
			return fmt.Errorf("rule %s requires %d items", rule.From, rule.Required)
		}
	}
	return nil
}

type rulesFile struct {
	Version string                `json:"version"`
	Rules   []domain.ContractRule `json:"rules"`
}

// LoadRules reads the rule table from path after validating it against schemaPath.
// A missing file yields the default table.
func LoadRules(path, schemaPath string, v validation.SchemaValidator) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgRulesFallback, "path", path)
		return DefaultRules(), nil
	}

	if v != nil && schemaPath != "" {
		if err := v.ValidateFile(path, schemaPath); err != nil {
			return nil, fmt.Errorf("invalid contract file %s: %w", path, err)
		}
	}

	var file rulesFile
	if err := utils.LoadJSON(path, &file); err != nil {
		return nil, err
	}
	if file.Version != RulesFileVersion {
		return nil, fmt.Errorf("contract file %s has version %q, want %q", path, file.Version, RulesFileVersion)
	}

	rules := make(Rules, len(file.Rules))
	for _, rule := range file.Rules {
		rule.From = domain.ParseRarity(string(rule.From))
		rule.To = domain.ParseRarity(string(rule.To))
		if rule.Required == 0 {
			rule.Required = domain.DefaultContractItems
		}
		if _, dup := rules[rule.From]; dup {
			return nil, fmt.Errorf("contract file %s: duplicate rule for %s", path, rule.From)
		}
		rules[rule.From] = rule
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid contract file %s: %w", path, err)
	}

	slog.Info(LogMsgRulesLoaded, "path", path, "rules", len(rules))
	return rules, nil
}

package plugins

import (
	"fmt"
	"strings"

	"github.com/crewcal/crewcal/internal/colors"
)

// PaletteDefinition describes a palette plugin loaded from YAML or from a Go
// definition file.
//
// The struct mirrors the on-disk schema under .crewcal/palettes/* and is
// intentionally narrow so rules can be validated before they reach the
// classifier.
type PaletteDefinition struct {
	ID      string           `json:"id" yaml:"id"`
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Version string           `json:"version" yaml:"version"`
	Rules   []RuleDefinition `json:"rules" yaml:"rules"`
}

// RuleDefinition is one classification rule: exactly one of prefix or team,
// mapped to a category.
type RuleDefinition struct {
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Team     string `json:"team,omitempty" yaml:"team,omitempty"`
	Category string `json:"category" yaml:"category"`
}

// Normalized returns a trimmed copy of the definition. Prefixes keep their
// whitespace: a trailing space is often the whole point of a prefix rule.
func (def PaletteDefinition) Normalized() PaletteDefinition {
	clone := PaletteDefinition{
		ID:      strings.TrimSpace(def.ID),
		Name:    strings.TrimSpace(def.Name),
		Version: strings.TrimSpace(def.Version),
	}
	if len(def.Rules) > 0 {
		clone.Rules = make([]RuleDefinition, len(def.Rules))
		for i, rule := range def.Rules {
			clone.Rules[i] = RuleDefinition{
				Prefix:   rule.Prefix,
				Team:     strings.TrimSpace(rule.Team),
				Category: strings.TrimSpace(rule.Category),
			}
		}
	}
	return clone
}

// Validate ensures the palette definition is well-formed.
func (def PaletteDefinition) Validate() error {
	normalized := def.Normalized()
	if normalized.ID == "" {
		return fmt.Errorf("palette: id is required")
	}
	if normalized.Version == "" {
		return fmt.Errorf("palette %s: version is required", normalized.ID)
	}
	if len(normalized.Rules) == 0 {
		return fmt.Errorf("palette %s: at least one rule is required", normalized.ID)
	}
	for i, rule := range normalized.Rules {
		if err := rule.validate(); err != nil {
			return fmt.Errorf("palette %s: rules[%d]: %w", normalized.ID, i, err)
		}
	}
	return nil
}

func (rule RuleDefinition) validate() error {
	hasPrefix := strings.TrimSpace(rule.Prefix) != ""
	hasTeam := rule.Team != ""
	if hasPrefix == hasTeam {
		return fmt.Errorf("exactly one of prefix or team is required")
	}
	if rule.Category == "" {
		return fmt.Errorf("category is required")
	}
	if _, err := colors.ParseCategory(rule.Category); err != nil {
		return err
	}
	return nil
}

// ClassifierRules converts the definition's rules into classifier rules,
// preserving order.
func (def PaletteDefinition) ClassifierRules() []colors.Rule {
	normalized := def.Normalized()
	rules := make([]colors.Rule, 0, len(normalized.Rules))
	for _, rule := range normalized.Rules {
		category, err := colors.ParseCategory(rule.Category)
		if err != nil {
			continue
		}
		if strings.TrimSpace(rule.Prefix) != "" {
			rules = append(rules, colors.Rule{Kind: colors.RulePrefix, Match: rule.Prefix, Category: category})
			continue
		}
		rules = append(rules, colors.Rule{Kind: colors.RuleExact, Match: rule.Team, Category: category})
	}
	return rules
}

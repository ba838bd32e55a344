package plugins

import (
	"testing"

	"github.com/crewcal/crewcal/internal/colors"
)

func TestClassifierRulesPreserveOrderAndKind(t *testing.T) {
	def := PaletteDefinition{
		ID:      "order",
		Version: "1.0.0",
		Rules: []RuleDefinition{
			{Prefix: "Night ", Category: "Lighting"},
			{Team: "Security Team", Category: "Other"},
		},
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	rules := def.ClassifierRules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Kind != colors.RulePrefix || rules[0].Match != "Night " || rules[0].Category != colors.CategoryLighting {
		t.Fatalf("first rule wrong: %+v", rules[0])
	}
	if rules[1].Kind != colors.RuleExact || rules[1].Match != "Security Team" {
		t.Fatalf("second rule wrong: %+v", rules[1])
	}
}

func TestNormalizedTrimsButKeepsPrefixWhitespace(t *testing.T) {
	def := PaletteDefinition{
		ID:      "  spaced  ",
		Version: " 1.0.0 ",
		Rules: []RuleDefinition{
			{Prefix: "Crane ", Category: " Other "},
			{Team: "  Finishing Team  ", Category: "Paint"},
		},
	}
	normalized := def.Normalized()
	if normalized.ID != "spaced" || normalized.Version != "1.0.0" {
		t.Fatalf("id/version not trimmed: %+v", normalized)
	}
	if normalized.Rules[0].Prefix != "Crane " {
		t.Fatalf("prefix whitespace must survive: %q", normalized.Rules[0].Prefix)
	}
	if normalized.Rules[1].Team != "Finishing Team" {
		t.Fatalf("team not trimmed: %q", normalized.Rules[1].Team)
	}
}

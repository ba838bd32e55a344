package colors

import (
	"fmt"
	"strings"
	"unicode"
)

// Category is the display grouping a team name maps to for swatch coloring.
type Category string

const (
	CategoryGypsum   Category = "Gypsum"
	CategoryWiring   Category = "Wiring"
	CategoryAC       Category = "AC"
	CategoryLighting Category = "Lighting"
	CategoryPaint    Category = "Paint"
	CategoryOther    Category = "Other"
)

// Categories lists every built-in category.
var Categories = []Category{
	CategoryGypsum,
	CategoryWiring,
	CategoryAC,
	CategoryLighting,
	CategoryPaint,
	CategoryOther,
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for _, cat := range Categories {
		if strings.EqualFold(trimmed, string(cat)) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("colors: unknown category %q", name)
}

// RuleKind selects how a rule matches a team name.
type RuleKind int

const (
	// RulePrefix matches any team name starting with the rule's text. A
	// whole family of variably named teams shares one category this way.
	RulePrefix RuleKind = iota
	// RuleExact matches one team name exactly.
	RuleExact
)

// Rule maps matching team names to a category. Rules are ordered; the first
// match wins.
type Rule struct {
	Kind     RuleKind
	Match    string
	Category Category
}

func (r Rule) matches(team string) bool {
	switch r.Kind {
	case RulePrefix:
		return strings.HasPrefix(team, r.Match)
	default:
		return team == r.Match
	}
}

// GypsumPrefix is the shared prefix of the custom gypsum sub-teams. Teams
// named under it join the Gypsum color family no matter the suffix.
const GypsumPrefix = "Gypsum "

// Classifier assigns swatch categories to team names. Classification is a
// pure function of the name: prefix rules first, then exact rules, then the
// fallback category.
type Classifier struct {
	rules    []Rule
	fallback Category
}

// NewClassifier builds the standard rule list for a team roster: the gypsum
// family prefix, then one exact rule per roster team derived from the first
// word of its name (letters only).
func NewClassifier(roster []string) *Classifier {
	rules := []Rule{{Kind: RulePrefix, Match: GypsumPrefix, Category: CategoryGypsum}}
	for _, team := range roster {
		trimmed := strings.TrimSpace(team)
		if trimmed == "" {
			continue
		}
		rules = append(rules, Rule{Kind: RuleExact, Match: trimmed, Category: firstWordCategory(trimmed)})
	}
	return &Classifier{rules: rules, fallback: CategoryOther}
}

// Classify returns the category for a team name. Same name, same category,
// always.
func (c *Classifier) Classify(team string) Category {
	for _, rule := range c.rules {
		if rule.matches(team) {
			return rule.Category
		}
	}
	return c.fallback
}

// Prepend inserts rules ahead of the existing list, keeping their relative
// order. Palette plugins extend the classifier through this.
func (c *Classifier) Prepend(rules ...Rule) {
	if len(rules) == 0 {
		return
	}
	merged := make([]Rule, 0, len(rules)+len(c.rules))
	merged = append(merged, rules...)
	merged = append(merged, c.rules...)
	c.rules = merged
}

// Rules returns a copy of the ordered rule list.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// firstWordCategory derives a category from the first word of a team name
// with non-letters stripped: "Gypsum - Framing" -> Gypsum, "AC Team" -> AC.
func firstWordCategory(team string) Category {
	first, _, _ := strings.Cut(team, " ")
	var b strings.Builder
	for _, r := range first {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return CategoryOther
	}
	if cat, err := ParseCategory(b.String()); err == nil {
		return cat
	}
	return Category(b.String())
}

// LegendEntry pairs a swatch category with the team name it was derived from.
type LegendEntry struct {
	Category Category
	Team     string
}

// Legend derives the legend rows for a set of team names, in the given
// order. Each category appears once, except Other: every distinct custom
// team keeps its own row so users can tell their teams apart.
func (c *Classifier) Legend(teams []string) []LegendEntry {
	seenCategories := make(map[Category]struct{})
	seenOther := make(map[string]struct{})
	var entries []LegendEntry
	for _, team := range teams {
		cat := c.Classify(team)
		if cat == CategoryOther {
			if _, ok := seenOther[team]; ok {
				continue
			}
			seenOther[team] = struct{}{}
		} else if _, ok := seenCategories[cat]; ok {
			continue
		}
		seenCategories[cat] = struct{}{}
		entries = append(entries, LegendEntry{Category: cat, Team: team})
	}
	return entries
}

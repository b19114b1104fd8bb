// Package categorize assigns a category to a free-text transaction description
// using ordered keyword rules.
package categorize

import (
	"strings"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// Rule maps a category to the lowercase substrings that select it.
type Rule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

// Categorizer evaluates rules in order; the first rule with any keyword
// contained in the description wins. It is immutable after construction.
type Categorizer struct {
	rules []Rule
}

// New builds a Categorizer that evaluates rules in the given order.
func New(rules ...Rule) *Categorizer {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			kws = append(kws, kw)
		}
		normalized = append(normalized, Rule{Category: r.Category, Keywords: kws})
	}
	return &Categorizer{rules: normalized}
}

// Default returns a Categorizer over the built-in keyword table.
func Default() *Categorizer {
	return New(DefaultRules()...)
}

// WithRules returns a Categorizer that tries custom rules before the built-ins.
func WithRules(custom []Rule) *Categorizer {
	return New(append(append([]Rule{}, custom...), DefaultRules()...)...)
}

// Rules returns a copy of the rules in evaluation order.
func (c *Categorizer) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Categorize returns the category for description, or Other when nothing
// matches. Matching is case-insensitive substring search, so "cafeteria"
// matches the "cafe" keyword.
func (c *Categorizer) Categorize(description string) model.Category {
	lower := strings.ToLower(description)
	if lower == "" {
		return model.CategoryOther
	}
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Category
			}
		}
	}
	return model.CategoryOther
}

// Apply fills in the category of every transaction whose category is empty
// or not part of the closed set. It returns the number of rows it changed.
func (c *Categorizer) Apply(txns []model.Transaction) int {
	changed := 0
	for i := range txns {
		if txns[i].Category.Valid() {
			continue
		}
		txns[i].Category = c.Categorize(txns[i].Description)
		changed++
	}
	return changed
}

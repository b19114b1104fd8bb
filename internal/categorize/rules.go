package categorize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// RulesFile is the on-disk shape of rules/categorization-rules.yaml.
type RulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// ReadRules parses and validates a rules document.
func ReadRules(r io.Reader) ([]Rule, error) {
	var doc RulesFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for i, rule := range doc.Rules {
		cat, err := model.ParseCategory(string(rule.Category))
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s): no keywords", i+1, cat)
		}
		rules = append(rules, Rule{Category: cat, Keywords: rule.Keywords})
	}
	return rules, nil
}

// LoadRules reads a rules file from disk. A missing file yields no rules.
func LoadRules(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening rules: %w", err)
	}
	defer f.Close()

	return ReadRules(f)
}

// SaveRules writes rules to path in the RulesFile format.
func SaveRules(path string, rules []Rule) error {
	if rules == nil {
		rules = []Rule{}
	}
	data, err := yaml.Marshal(RulesFile{Rules: rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}

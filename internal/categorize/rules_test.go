package categorize

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/model"
)

func TestReadRules(t *testing.T) {
	doc := `rules:
  - category: entertainment
    keywords: [prime video, audible]
  - category: Food & Dining
    keywords: [canteen]
`
	rules, err := ReadRules(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, model.CategoryEntertainment, rules[0].Category)
	assert.Equal(t, []string{"prime video", "audible"}, rules[0].Keywords)
	assert.Equal(t, model.CategoryFoodDining, rules[1].Category)
}

func TestReadRules_EmptyList(t *testing.T) {
	rules, err := ReadRules(strings.NewReader("rules: []\n"))
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestReadRules_EmptyDocument(t *testing.T) {
	rules, err := ReadRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestReadRules_UnknownCategory(t *testing.T) {
	_, err := ReadRules(strings.NewReader("rules:\n  - category: Groceries\n    keywords: [aldi]\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "rule 1")
}

func TestReadRules_NoKeywords(t *testing.T) {
	_, err := ReadRules(strings.NewReader("rules:\n  - category: Other\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no keywords")
}

func TestLoadRules_Missing(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	in := []Rule{{Category: model.CategoryInvestment, Keywords: []string{"vanguard"}}}
	require.NoError(t, SaveRules(path, in))

	got, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	require.NoError(t, SaveRules(path, nil))
	got, err = LoadRules(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

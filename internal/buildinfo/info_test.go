package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "abc1234", "2025-01-31"
	assert.Equal(t, "v1.2.3 (commit: abc1234, built: 2025-01-31)", String())
}

func TestString_Defaults(t *testing.T) {
	assert.Contains(t, String(), "(commit: ")
}

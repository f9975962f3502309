package school

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	err := WrapError("snapshot", "Load", ErrSnapshotCorrupt, "cannot decode data.json", errors.New("unexpected end of JSON input"))

	assert.True(t, errors.Is(err, ErrSnapshotCorrupt))
	assert.True(t, IsSnapshotCorrupt(err))
	assert.False(t, IsInvalidInput(err))
}

func TestDomainError_SurvivesWrapping(t *testing.T) {
	inner := WrapError("cli", "ParseInt", ErrInvalidInput, `not an integer: "abc"`, nil)
	outer := fmt.Errorf("add student: %w", inner)

	assert.True(t, IsInvalidInput(outer))
	assert.Contains(t, outer.Error(), "cli.ParseInt")
}

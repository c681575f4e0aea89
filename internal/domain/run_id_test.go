package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

func TestRunID_IsStable(t *testing.T) {
	first, err := RunID([]m.ExampleID{"b", "a", "c"})
	require.NoError(t, err)

	second, err := RunID([]m.ExampleID{"c", "b", "a"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestRunID_DependsOnExampleSet(t *testing.T) {
	base, err := RunID([]m.ExampleID{"a", "b"})
	require.NoError(t, err)

	other, err := RunID([]m.ExampleID{"a", "b", "c"})
	require.NoError(t, err)

	empty, err := RunID(nil)
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
	assert.NotEqual(t, base, empty)
}

func TestRunID_NormalizesUnicode(t *testing.T) {
	composed, err := RunID([]m.ExampleID{"caf\u00e9"})
	require.NoError(t, err)

	decomposed, err := RunID([]m.ExampleID{"cafe\u0301"})
	require.NoError(t, err)

	assert.Equal(t, composed, decomposed)
}

func TestExampleIDFor(t *testing.T) {
	id := ExampleIDFor("example.com/calc", "TestAdd")

	assert.Len(t, id, 32)
	assert.Equal(t, id, ExampleIDFor("example.com/calc", "TestAdd"))
	assert.NotEqual(t, id, ExampleIDFor("example.com/calc", "TestSub"))
	// the separator keeps package and name apart
	assert.NotEqual(t, ExampleIDFor("a", "bc"), ExampleIDFor("ab", "c"))
}

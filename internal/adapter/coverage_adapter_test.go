package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

func TestProfileCoverageAdapter_ParseProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.out")
	writeTestFile(t, path, `mode: set
example.com/project/calc/calc.go:3.24,5.2 1 1
example.com/project/calc/calc.go:7.24,9.2 1 0
example.com/project/util/util.go:3.20,4.2 1 0
example.com/other/lib.go:3.20,4.2 2 1
`)

	files, err := NewProfileCoverageAdapter().ParseProfile(m.Path(path), "example.com/project")
	require.NoError(t, err)

	require.Contains(t, files, "calc/calc.go")
	assert.NotContains(t, files, "util/util.go")
	assert.Contains(t, files, "example.com/other/lib.go")

	calc := files["calc/calc.go"]
	assert.Equal(t, 2, calc.Statements)
	assert.Equal(t, 1, calc.Covered)
	assert.Equal(t, map[int]int{3: 1, 4: 1, 5: 1}, calc.Lines)
}

func TestProfileCoverageAdapter_MissingProfile(t *testing.T) {
	_, err := NewProfileCoverageAdapter().ParseProfile(m.Path(filepath.Join(t.TempDir(), "none.out")), "example.com/project")
	require.Error(t, err)
}

func TestModuleRelative(t *testing.T) {
	assert.Equal(t, "a/b.go", moduleRelative("example.com/p/a/b.go", "example.com/p"))
	assert.Equal(t, "example.com/px/b.go", moduleRelative("example.com/px/b.go", "example.com/p"))
	assert.Equal(t, "example.com/p/b.go", moduleRelative("example.com/p/b.go", ""))
}

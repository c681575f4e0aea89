package adapter

import (
	"context"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

func TestLocalGoFileAdapter_Parse_InvalidSource(t *testing.T) {
	adapter := NewLocalGoFileAdapter(NewLocalSourceFSAdapter())
	fset := token.NewFileSet()

	if _, err := adapter.Parse(context.Background(), fset, "broken.go", []byte("package foo\n func")); err == nil {
		t.Fatalf("Parse() expected error for invalid source")
	}
}

func TestLocalGoFileAdapter_Parse_ContextCancellation(t *testing.T) {
	adapter := NewLocalGoFileAdapter(NewLocalSourceFSAdapter())
	fset := token.NewFileSet()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adapter.Parse(ctx, fset, "example.go", []byte("package main\n func main() {}")); err == nil {
		t.Fatalf("Parse() expected error due to context cancellation")
	}
}

func TestLocalGoFileAdapter_Parse_ReadsFileWithoutSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc_test.go")
	writeTestFile(t, path, "package calc\n\nfunc TestAdd(t *testing.T) {}\n")

	adapter := NewLocalGoFileAdapter(NewLocalSourceFSAdapter())

	file, err := adapter.Parse(context.Background(), token.NewFileSet(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "calc", file.Name.Name)
	assert.Len(t, file.Decls, 1)
}

func TestLocalGoFileAdapter_LocateTests(t *testing.T) {
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "calc_test.go"), `package calc

import "testing"

func TestAdd(t *testing.T) {}

func Testlower(t *testing.T) {}

func TestHelper(t *testing.T, extra int) {}

func BenchmarkAdd(b *testing.B) {}

func helper() {}

func Test(t *testing.T) {}
`)
	writeTestFile(t, filepath.Join(dir, "ext_test.go"), `package calc_test

import (
	"testing"
	. "testing"
)

var _ = testing.Short

func TestExternal(t *T) {}
`)

	adapter := NewLocalGoFileAdapter(NewLocalSourceFSAdapter())

	tests, err := adapter.LocateTests(context.Background(), m.TestPackage{
		ImportPath:   "example.com/calc",
		Dir:          dir,
		TestGoFiles:  []string{"calc_test.go"},
		XTestGoFiles: []string{"ext_test.go"},
	})
	require.NoError(t, err)

	names := make([]string, 0, len(tests))
	for _, test := range tests {
		names = append(names, test.Name)
	}

	assert.Equal(t, []string{"TestAdd", "Test", "TestExternal"}, names)
	assert.Equal(t, m.Path(filepath.Join(dir, "calc_test.go")), tests[0].File)
	assert.Equal(t, 5, tests[0].Line)
	assert.Equal(t, 15, tests[1].Line)
}

func TestLocalGoFileAdapter_LocateTests_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "broken_test.go"), "package broken\nfunc")

	_, err := NewLocalGoFileAdapter(NewLocalSourceFSAdapter()).LocateTests(context.Background(), m.TestPackage{
		Dir:         dir,
		TestGoFiles: []string{"broken_test.go"},
	})
	require.Error(t, err)
}

func TestLocalGoFileAdapter_LocateTests_MissingFile(t *testing.T) {
	_, err := NewLocalGoFileAdapter(NewLocalSourceFSAdapter()).LocateTests(context.Background(), m.TestPackage{
		Dir:         t.TempDir(),
		TestGoFiles: []string{"gone_test.go"},
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsTestName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Test", true},
		{"TestFoo", true},
		{"Test_foo", true},
		{"Test1", true},
		{"Testfoo", false},
		{"Tes", false},
		{"BenchmarkFoo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTestName(tt.name))
		})
	}
}

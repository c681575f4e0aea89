package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"unicode"
	"unicode/utf8"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can find
// test functions without depending on go/ast.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// LocateTests returns every top-level TestXxx(*testing.T) declared in the
	// package's test files, ordered by file and line.
	LocateTests(ctx context.Context, pkg m.TestPackage) ([]m.TestFunc, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct {
	fs SourceFSAdapter
}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter reading test files
// through fs.
func NewLocalGoFileAdapter(fs SourceFSAdapter) *LocalGoFileAdapter {
	return &LocalGoFileAdapter{fs: fs}
}

// Parse builds an AST for the provided filename/source pair. A nil src makes
// the parser read filename from disk.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// a typed nil slice inside the any parameter would parse as empty source
	var source any
	if src != nil {
		source = src
	}

	return parser.ParseFile(fileSet, filename, source, parser.SkipObjectResolution)
}

// LocateTests implements GoFileAdapter.
func (a *LocalGoFileAdapter) LocateTests(ctx context.Context, pkg m.TestPackage) ([]m.TestFunc, error) {
	fset := token.NewFileSet()

	files := make([]string, 0, len(pkg.TestGoFiles)+len(pkg.XTestGoFiles))
	files = append(files, pkg.TestGoFiles...)
	files = append(files, pkg.XTestGoFiles...)

	var tests []m.TestFunc

	for _, name := range files {
		path := filepath.Join(pkg.Dir, name)

		src, err := a.fs.ReadFile(m.Path(path))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		file, err := a.Parse(ctx, fset, path, src)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !isTestFunc(fn) {
				continue
			}

			tests = append(tests, m.TestFunc{
				Name: fn.Name.Name,
				File: m.Path(path),
				Line: fset.Position(fn.Pos()).Line,
			})
		}
	}

	sort.SliceStable(tests, func(i, j int) bool {
		if tests[i].File != tests[j].File {
			return tests[i].File < tests[j].File
		}

		return tests[i].Line < tests[j].Line
	})

	return tests, nil
}

// isTestFunc mirrors the go tool's rule: TestXxx where Xxx does not start
// with a lower-case letter, taking a single *testing.T.
func isTestFunc(fn *ast.FuncDecl) bool {
	if fn.Recv != nil || fn.Type.Params == nil || len(fn.Type.Params.List) != 1 {
		return false
	}

	if fn.Type.Results != nil && len(fn.Type.Results.List) > 0 {
		return false
	}

	if !isTestName(fn.Name.Name) {
		return false
	}

	param := fn.Type.Params.List[0]
	if len(param.Names) > 1 {
		return false
	}

	star, ok := param.Type.(*ast.StarExpr)
	if !ok {
		return false
	}

	switch t := star.X.(type) {
	case *ast.SelectorExpr:
		return t.Sel.Name == "T"
	case *ast.Ident:
		// dot-imported testing package
		return t.Name == "T"
	}

	return false
}

func isTestName(name string) bool {
	const prefix = "Test"

	if len(name) < len(prefix) || name[:len(prefix)] != prefix {
		return false
	}

	if len(name) == len(prefix) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(name[len(prefix):])

	return !unicode.IsLower(r)
}

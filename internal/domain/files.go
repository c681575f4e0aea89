package domain

import (
	"sort"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// FileRegistry tracks known source files and their change state relative to
// the previous snapshot.
type FileRegistry struct {
	files    map[string]m.SourceFile
	modified map[string]struct{}
	deleted  map[string]struct{}
}

// NewFileRegistry returns an empty registry.
func NewFileRegistry() *FileRegistry {
	return &FileRegistry{
		files:    make(map[string]m.SourceFile),
		modified: make(map[string]struct{}),
		deleted:  make(map[string]struct{}),
	}
}

// Register records a file as known.
func (f *FileRegistry) Register(file m.SourceFile) {
	f.files[file.FileName] = file
}

// MarkModified flags a file as modified. A deleted file stays deleted.
func (f *FileRegistry) MarkModified(fileName string) {
	if _, gone := f.deleted[fileName]; gone {
		return
	}

	f.modified[fileName] = struct{}{}
}

// MarkDeleted flags a file as deleted, superseding a modified flag.
func (f *FileRegistry) MarkDeleted(fileName string) {
	delete(f.modified, fileName)
	f.deleted[fileName] = struct{}{}
}

// Apply marks every file listed in changes.
func (f *FileRegistry) Apply(changes m.FileChanges) {
	for _, name := range changes.Deleted {
		f.MarkDeleted(name)
	}

	for _, name := range changes.Modified {
		f.MarkModified(name)
	}
}

func (f *FileRegistry) IsModified(fileName string) bool {
	_, ok := f.modified[fileName]
	return ok
}

func (f *FileRegistry) IsDeleted(fileName string) bool {
	_, ok := f.deleted[fileName]
	return ok
}

// IsChanged reports whether the file is modified or deleted.
func (f *FileRegistry) IsChanged(fileName string) bool {
	return f.IsModified(fileName) || f.IsDeleted(fileName)
}

// Files returns a copy of the known files.
func (f *FileRegistry) Files() map[string]m.SourceFile {
	out := make(map[string]m.SourceFile, len(f.files))
	for name, file := range f.files {
		out[name] = file
	}

	return out
}

// Changed returns every modified or deleted file name in ascending order.
func (f *FileRegistry) Changed() []string {
	names := make([]string, 0, len(f.modified)+len(f.deleted))
	for name := range f.modified {
		names = append(names, name)
	}

	for name := range f.deleted {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

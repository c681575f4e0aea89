package model

// Path represents a file system path.
type Path string

// SourceFile is a file touched by at least one example.
type SourceFile struct {
	FileName string `json:"file_name" yaml:"file_name"`
	Hash     string `json:"hash" yaml:"hash"`
}

// FileCoverage is the per-file coverage detail recorded for one example.
// Lines maps a line number to the number of times it was hit.
type FileCoverage struct {
	Lines      map[int]int `json:"lines" yaml:"lines"`
	Statements int         `json:"statements" yaml:"statements"`
	Covered    int         `json:"covered" yaml:"covered"`
}

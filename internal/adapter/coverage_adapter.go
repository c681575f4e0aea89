package adapter

import (
	"fmt"
	"strings"

	"golang.org/x/tools/cover"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// CoverageAdapter turns a coverage profile into per-file coverage detail.
type CoverageAdapter interface {
	// ParseProfile reads the profile at path. File names inside modulePath
	// become module-relative; only files with at least one hit are returned.
	ParseProfile(path m.Path, modulePath string) (map[string]m.FileCoverage, error)
}

// ProfileCoverageAdapter parses go test -coverprofile output.
type ProfileCoverageAdapter struct{}

// NewProfileCoverageAdapter creates a ProfileCoverageAdapter.
func NewProfileCoverageAdapter() *ProfileCoverageAdapter {
	return &ProfileCoverageAdapter{}
}

// ParseProfile implements CoverageAdapter.
func (a *ProfileCoverageAdapter) ParseProfile(path m.Path, modulePath string) (map[string]m.FileCoverage, error) {
	profiles, err := cover.ParseProfiles(string(path))
	if err != nil {
		return nil, fmt.Errorf("parse coverage profile: %w", err)
	}

	files := make(map[string]m.FileCoverage)

	for _, profile := range profiles {
		detail := m.FileCoverage{Lines: make(map[int]int)}

		for _, block := range profile.Blocks {
			detail.Statements += block.NumStmt

			if block.Count == 0 {
				continue
			}

			detail.Covered += block.NumStmt

			for line := block.StartLine; line <= block.EndLine; line++ {
				detail.Lines[line] = max(detail.Lines[line], block.Count)
			}
		}

		if detail.Covered == 0 {
			continue
		}

		files[moduleRelative(profile.FileName, modulePath)] = detail
	}

	return files, nil
}

func moduleRelative(fileName, modulePath string) string {
	if modulePath == "" {
		return fileName
	}

	if rest, ok := strings.CutPrefix(fileName, modulePath+"/"); ok {
		return rest
	}

	return fileName
}

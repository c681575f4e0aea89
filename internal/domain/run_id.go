package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// runIDDomain separates run identities from other hashes; bump the version
// if the canonical form changes.
const runIDDomain = "gotracer/run/v1"

// RunID hashes the sorted, NFC-normalized example ids. The same example
// universe always yields the same id.
func RunID(ids []m.ExampleID) (string, error) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, norm.NFC.String(string(id)))
	}

	sort.Strings(keys)

	var canonical bytes.Buffer

	enc := json.NewEncoder(&canonical)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(keys); err != nil {
		return "", fmt.Errorf("run id: marshal example ids: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(runIDDomain))
	h.Write([]byte{0x00})
	h.Write(bytes.TrimSuffix(canonical.Bytes(), []byte("\n")))

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ExampleIDFor derives the identity of a test function in a package.
func ExampleIDFor(importPath, testName string) m.ExampleID {
	h := sha256.New()
	h.Write([]byte(norm.NFC.String(importPath)))
	h.Write([]byte{0x00})
	h.Write([]byte(norm.NFC.String(testName)))

	return m.ExampleID(hex.EncodeToString(h.Sum(nil))[:32])
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LastRun is the top-level run summary written next to the snapshot directories.
type LastRun struct {
	RunID               string    `json:"run_id" yaml:"run_id"`
	Timestamp           time.Time `json:"timestamp" yaml:"timestamp"`
	InvocationID        string    `json:"invocation_id" yaml:"invocation_id"`
	PID                 int       `json:"pid" yaml:"pid"`
	ActualCount         int       `json:"actual_count" yaml:"actual_count"`
	ExampleCount        int       `json:"example_count" yaml:"example_count"`
	DuplicateExamples   int       `json:"duplicate_examples" yaml:"duplicate_examples"`
	InterruptedExamples int       `json:"interrupted_examples" yaml:"interrupted_examples"`
	FailedExamples      int       `json:"failed_examples" yaml:"failed_examples"`
	SkippedExamples     int       `json:"skipped_examples" yaml:"skipped_examples"`
	PendingExamples     int       `json:"pending_examples" yaml:"pending_examples"`
	FlakyExamples       int       `json:"flaky_examples" yaml:"flaky_examples"`
}

// OriginCount counts the examples defined in one origin (rerun) file.
type OriginCount struct {
	FileName string
	Count    int
}

// OriginCounts is an ordered origin-file -> count mapping.
type OriginCounts []OriginCount

// ReverseDependencyEntry aggregates the examples that depend on one file.
type ReverseDependencyEntry struct {
	FileName     string
	ExampleCount int
	Examples     OriginCounts
}

// ReverseDependency is an ordered file -> dependents mapping. Both encodings
// emit it as an object whose key order is the slice order.
type ReverseDependency []ReverseDependencyEntry

// Lookup returns the entry for fileName.
func (r ReverseDependency) Lookup(fileName string) (ReverseDependencyEntry, bool) {
	for _, entry := range r {
		if entry.FileName == fileName {
			return entry, true
		}
	}

	return ReverseDependencyEntry{}, false
}

type reverseDependencyBody struct {
	ExampleCount int          `json:"example_count" yaml:"example_count"`
	Examples     OriginCounts `json:"examples" yaml:"examples"`
}

// MarshalJSON implements json.Marshaler.
func (o OriginCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, origin := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(origin.FileName)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(origin.Count))
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping document order.
func (o *OriginCounts) UnmarshalJSON(data []byte) error {
	out := OriginCounts{}

	err := decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("examples[%q]: %w", key, err)
		}

		out = append(out, OriginCount{FileName: key, Count: count})

		return nil
	})
	if err != nil {
		return err
	}

	*o = out

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r ReverseDependency) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, entry := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.FileName)
		if err != nil {
			return nil, err
		}

		body, err := json.Marshal(reverseDependencyBody{ExampleCount: entry.ExampleCount, Examples: entry.Examples})
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping document order.
func (r *ReverseDependency) UnmarshalJSON(data []byte) error {
	out := ReverseDependency{}

	err := decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var body reverseDependencyBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("reverse dependency %q: %w", key, err)
		}

		if body.Examples == nil {
			body.Examples = OriginCounts{}
		}

		out = append(out, ReverseDependencyEntry{FileName: key, ExampleCount: body.ExampleCount, Examples: body.Examples})

		return nil
	})
	if err != nil {
		return err
	}

	*r = out

	return nil
}

func decodeOrderedObject(data []byte, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		if err := fn(key, dec); err != nil {
			return err
		}
	}

	_, err = dec.Token()

	return err
}

// MarshalYAML implements yaml.Marshaler.
func (o OriginCounts) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, origin := range o {
		node.Content = append(node.Content, stringNode(origin.FileName), intNode(origin.Count))
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping document order.
func (o *OriginCounts) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping for examples", value.Line)
	}

	out := make(OriginCounts, 0, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		var count int
		if err := value.Content[i+1].Decode(&count); err != nil {
			return err
		}

		out = append(out, OriginCount{FileName: value.Content[i].Value, Count: count})
	}

	*o = out

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r ReverseDependency) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, entry := range r {
		examples, err := entry.Examples.MarshalYAML()
		if err != nil {
			return nil, err
		}

		body := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		body.Content = append(body.Content,
			stringNode("example_count"), intNode(entry.ExampleCount),
			stringNode("examples"), examples.(*yaml.Node),
		)

		node.Content = append(node.Content, stringNode(entry.FileName), body)
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping document order.
func (r *ReverseDependency) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping for reverse dependency", value.Line)
	}

	out := make(ReverseDependency, 0, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		var body reverseDependencyBody
		if err := value.Content[i+1].Decode(&body); err != nil {
			return err
		}

		if body.Examples == nil {
			body.Examples = OriginCounts{}
		}

		out = append(out, ReverseDependencyEntry{
			FileName:     value.Content[i].Value,
			ExampleCount: body.ExampleCount,
			Examples:     body.Examples,
		})
	}

	*r = out

	return nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func intNode(value int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)}
}

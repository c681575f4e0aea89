package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSerializer is returned for a serializer name no codec answers to.
var ErrUnknownSerializer = errors.New("unknown serializer")

// Serializer is the pluggable codec used for every snapshot artifact.
type Serializer interface {
	Serialize(v any) ([]byte, error)
	Deserialize(data []byte, v any) error
	// Extension is the artifact file extension, without the dot.
	Extension() string
	// Encoding is the text encoding of serialized artifacts.
	Encoding() string
}

// JSONSerializer encodes artifacts as indented JSON.
type JSONSerializer struct{}

// Serialize implements Serializer.
func (JSONSerializer) Serialize(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json serialize: %w", err)
	}

	return append(data, '\n'), nil
}

// Deserialize implements Serializer.
func (JSONSerializer) Deserialize(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json deserialize: %w", err)
	}

	return nil
}

func (JSONSerializer) Extension() string { return "json" }
func (JSONSerializer) Encoding() string  { return "utf-8" }

// YAMLSerializer encodes artifacts as YAML documents.
type YAMLSerializer struct{}

// Serialize implements Serializer.
func (YAMLSerializer) Serialize(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml serialize: %w", err)
	}

	return data, nil
}

// Deserialize implements Serializer.
func (YAMLSerializer) Deserialize(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yaml deserialize: %w", err)
	}

	return nil
}

func (YAMLSerializer) Extension() string { return "yaml" }
func (YAMLSerializer) Encoding() string  { return "utf-8" }

// NewSerializer returns the codec registered under name.
func NewSerializer(name string) (Serializer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONSerializer{}, nil
	case "yaml", "yml":
		return YAMLSerializer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSerializer, name)
	}
}

package transcript

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an on-disk transcript encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a [Format]. Matching is case-insensitive
// and "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Config holds the options for [Normalize].
type Config struct {
	// Input is the encoding of the transcript being read.
	// Defaults to JSON if empty.
	Input Format

	// Output is the encoding written back out.
	// Defaults to JSON if empty.
	Output Format

	// Coalesce folds adjacent messages from the same speaker.
	Coalesce bool

	// Validate rejects transcripts containing malformed messages.
	Validate bool

	// Fingerprint computes a digest of the normalized transcript.
	Fingerprint bool
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Input:    FormatJSON,
		Output:   FormatJSON,
		Validate: true,
	}
}

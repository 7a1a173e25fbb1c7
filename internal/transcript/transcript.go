// Package transcript reads chat transcripts in JSON or YAML, normalizes them
// to the canonical encoding and writes them back out.
//
// A transcript is a [oneormany.OneOrMany] of [chat.Message], so a file may
// hold a list of messages or a single bare message object.
package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Jarekkkkk/rig/chat"
	"github.com/Jarekkkkk/rig/oneormany"
)

// Transcript is a non-empty conversation.
type Transcript = oneormany.OneOrMany[chat.Message]

// Result summarizes a [Normalize] run.
type Result struct {
	// Transcript is the normalized conversation that was written.
	Transcript Transcript

	// Read is the number of messages decoded from the input.
	Read int

	// Folded is the number of messages removed by coalescing.
	Folded int

	// Fingerprint is the hex digest of the written conversation, or empty
	// when Config.Fingerprint is false.
	Fingerprint string
}

// Decode reads a whole transcript from r.
func Decode(r io.Reader, format Format) (Transcript, error) {
	var t Transcript
	data, err := io.ReadAll(r)
	if err != nil {
		return t, fmt.Errorf("transcript: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return t, fmt.Errorf("transcript: empty input: %w", oneormany.ErrEmptyList)
	}

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &t)
	case FormatYAML:
		// Decode via a node so a null document reaches UnmarshalYAML instead
		// of being zeroed by yaml.v3.
		var doc yaml.Node
		if err = yaml.Unmarshal(data, &doc); err == nil {
			err = t.UnmarshalYAML(&doc)
		}
	default:
		return t, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return t, fmt.Errorf("transcript: decode %s: %w", format, err)
	}
	return t, nil
}

// Encode writes t to w in the given format. Both formats always write the
// list form, even for a single message.
func Encode(w io.Writer, format Format, t Transcript) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Normalize decodes a transcript from r according to cfg, optionally
// validates, coalesces and fingerprints it, and encodes it to w.
func Normalize(cfg Config, r io.Reader, w io.Writer) (*Result, error) {
	if cfg.Input == "" {
		cfg.Input = FormatJSON
	}
	if cfg.Output == "" {
		cfg.Output = FormatJSON
	}
	log := Logger().With(zap.String("input", string(cfg.Input)), zap.String("output", string(cfg.Output)))

	t, err := Decode(r, cfg.Input)
	if err != nil {
		log.Warn("decode failed", zap.Error(err))
		return nil, err
	}
	res := &Result{Read: t.Len()}
	log.Debug("decoded transcript", zap.Int("messages", res.Read))

	if cfg.Validate {
		for i, m := range t.All() {
			if err := m.Validate(); err != nil {
				log.Warn("invalid message", zap.Int("index", i), zap.Error(err))
				return nil, fmt.Errorf("%w %d: %w", ErrInvalidMessage, i, err)
			}
		}
	}

	if cfg.Coalesce {
		folded, err := chat.Coalesce(t.Slice())
		if err != nil {
			return nil, err
		}
		if t, err = oneormany.Many(folded); err != nil {
			return nil, err
		}
		res.Folded = res.Read - t.Len()
		log.Debug("coalesced transcript", zap.Int("folded", res.Folded))
	}

	if cfg.Fingerprint {
		if res.Fingerprint, err = chat.HistoryFingerprint(t.Slice()); err != nil {
			return nil, err
		}
	}

	if err := Encode(w, cfg.Output, t); err != nil {
		return nil, fmt.Errorf("transcript: encode %s: %w", cfg.Output, err)
	}
	res.Transcript = t
	log.Info("normalized transcript",
		zap.Int("read", res.Read),
		zap.Int("written", t.Len()),
		zap.String("fingerprint", res.Fingerprint))
	return res, nil
}

package chat

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/Jarekkkkk/rig/oneormany"
)

// coalescable reports whether b can be folded into a.
// Tool results and tool-calling turns are never folded.
func coalescable(a, b Message) bool {
	return a.Role == b.Role &&
		a.Role != RoleTool &&
		a.Name == b.Name &&
		a.Content != nil && b.Content != nil &&
		a.ToolCalls == nil && b.ToolCalls == nil
}

// Coalesce returns history with runs of adjacent messages from the same
// speaker folded into one message whose content parts are the run's parts
// in order. The input slice and its messages are not modified; messages
// that are not folded are returned as-is.
func Coalesce(history []Message) ([]Message, error) {
	out := make([]Message, 0, len(history))
	for _, m := range history {
		if n := len(out); n > 0 && coalescable(out[n-1], m) {
			merged, err := oneormany.Merge([]oneormany.OneOrMany[Content]{*out[n-1].Content, *m.Content})
			if err != nil {
				return nil, err
			}
			out[n-1].Content = &merged
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of m's canonical JSON
// encoding. Messages that decode to the same value share a fingerprint
// whichever wire shape they arrived in.
func Fingerprint(m Message) (string, error) {
	return HistoryFingerprint([]Message{m})
}

// HistoryFingerprint digests a whole conversation, one canonical JSON line
// per message.
func HistoryFingerprint(history []Message) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(h)
	for i, m := range history {
		if err := enc.Encode(m); err != nil {
			return "", fmt.Errorf("chat: fingerprint message %d: %w", i, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

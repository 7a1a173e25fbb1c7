package transcript

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Jarekkkkk/rig/chat"
	"github.com/Jarekkkkk/rig/oneormany"
)

const history = `[
  {"role": "system", "content": "be brief"},
  {"role": "user", "content": "hello"},
  {"role": "user", "content": [{"type": "text", "text": "are you there?"}]},
  {"role": "assistant", "content": {"type": "text", "text": "yes"}}
]`

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "JSON": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	got, err := FormatFromPath("/tmp/chat.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = FormatFromPath("chat")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeSingleMessage(t *testing.T) {
	tr, err := Decode(strings.NewReader(`{"role":"user","content":"hi"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, "hi", tr.First().Text())

	tr, err = Decode(strings.NewReader("role: user\ncontent: hi\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestDecodeRejectsEmpty(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		_, err := Decode(strings.NewReader("  \n"), f)
		assert.ErrorIs(t, err, oneormany.ErrEmptyList, f)
	}
	_, err := Decode(strings.NewReader("[]"), FormatJSON)
	assert.ErrorIs(t, err, oneormany.ErrInvalidLength)

	_, err = Decode(strings.NewReader("null\n"), FormatYAML)
	assert.ErrorIs(t, err, oneormany.ErrUnsupportedShape)
}

func TestNormalize(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Coalesce = true
	cfg.Fingerprint = true

	res, err := Normalize(cfg, strings.NewReader(history), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Read)
	assert.Equal(t, 1, res.Folded)
	assert.Equal(t, 3, res.Transcript.Len())
	assert.Len(t, res.Fingerprint, 64)

	// The written output decodes back to the same transcript.
	again, err := Decode(&out, FormatJSON)
	require.NoError(t, err)
	fp, err := chat.HistoryFingerprint(again.Slice())
	require.NoError(t, err)
	assert.Equal(t, res.Fingerprint, fp)
}

func TestNormalizeJSONToYAML(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = FormatYAML

	_, err := Normalize(cfg, strings.NewReader(`{"role":"user","content":"hi"}`), &out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "- role: user\n"), out.String())
	assert.Contains(t, out.String(), "- type: text")

	again, err := Decode(&out, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "hi", again.First().Text())
}

func TestNormalizeValidation(t *testing.T) {
	in := `[{"role":"user","content":"hi"},{"role":"tool","content":"42"}]`

	_, err := Normalize(DefaultConfig(), strings.NewReader(in), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidMessage)
	assert.ErrorIs(t, err, chat.ErrMissingToolCallID)

	cfg := DefaultConfig()
	cfg.Validate = false
	_, err = Normalize(cfg, strings.NewReader(in), &bytes.Buffer{})
	assert.NoError(t, err)
}

func TestNormalizeLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	_, err := Normalize(DefaultConfig(), strings.NewReader(history), &bytes.Buffer{})
	require.NoError(t, err)

	entries := logs.FilterMessage("normalized transcript").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 4, entries[0].ContextMap()["read"])
	assert.Equal(t, "json", entries[0].ContextMap()["input"])

	_, err = Normalize(DefaultConfig(), strings.NewReader("[]"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("decode failed").Len())
}

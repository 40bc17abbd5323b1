package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Options{Level: Info, Format: FormatJSON, App: "petclinic"}, &buf)

	l.With(map[string]any{"owner_id": 6}).Info("visits aggregated", map[string]any{
		"visits": 4,
		"err":    errors.New("boom"),
		"  ":     "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "visits aggregated", entry["message"])
	assert.Equal(t, "petclinic", entry["app"])
	assert.EqualValues(t, 6, entry["owner_id"])
	assert.EqualValues(t, 4, entry["visits"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "  ")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Options{Level: Warn, Format: FormatJSON}, &buf)

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	l.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestTextLogger_IsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Options{Level: Debug, Format: FormatText}, &buf)

	l.Debug("pet fetched", map[string]any{"pet_id": 7})

	out := buf.String()
	assert.Contains(t, out, "pet fetched")
	assert.Contains(t, out, "pet_id=7")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"a": 1}).Error("nothing", map[string]any{"b": 2})
}

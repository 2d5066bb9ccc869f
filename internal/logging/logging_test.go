package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"Warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetup_WritesPlainTextToFile(t *testing.T) {
	var file bytes.Buffer
	logger := Setup("debug", nil, &file)

	logger.Debug().Int("score", 100).Msg("enemy destroyed")
	logger.Trace().Msg("hidden")

	out := file.String()
	assert.Contains(t, out, "enemy destroyed")
	assert.Contains(t, out, "score=100")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\x1b[")
}

func TestSetup_NoWriters(t *testing.T) {
	logger := Setup("info", nil, nil)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestSampled_DropsBursts(t *testing.T) {
	var buf bytes.Buffer
	logger := Sampled(zerolog.New(&buf))
	for i := 0; i < 50; i++ {
		logger.Info().Int("i", i).Msg("tick")
	}
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.GreaterOrEqual(t, lines, 5)
	assert.Less(t, lines, 50)
}

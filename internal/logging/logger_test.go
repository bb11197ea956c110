package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestWithTabID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := WithTabID(WithContext(context.Background(), logger), "tab-1")

	FromContext(ctx).Info().Msg("hello")

	require.Contains(t, buf.String(), `"tab_id":"tab-1"`)
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.b", TruncateURL("https://a.b", 20))
	assert.Equal(t, "https://exa...", TruncateURL("https://example.com/path", 14))
}

func TestContextFieldsAccumulate(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), logger)
	ctx = WithURL(WithComponent(ctx, "tab-coordinator"), "https://a.example/")

	FromContext(ctx).Info().Msg("loading url")

	out := buf.String()
	assert.Contains(t, out, `"component":"tab-coordinator"`)
	assert.Contains(t, out, `"url":"https://a.example/"`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestSetGlobalLevel(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.TraceLevel, Format: "json", Output: &buf})

	SetGlobalLevel("error")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	SetGlobalLevel("debug")
	logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

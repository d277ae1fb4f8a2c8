package template

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

var allTokens = []string{
	"{{PRINTER_MODEL}}", "{{TIP_DISTANCE}}", "{{TEMP}}", "{{TIP_DISTANCE_SAFE}}",
	"{{TIP_DISTANCE_PROBE}}", "{{CENTER_X}}", "{{CENTER_Y}}", "{{HEATUP_PLATE}}",
	"{{PREVENT_RADIANT_HEAT}}", "{{MEASUREMENT_ROUNDS}}", "{{COOLDOWN_PLATE}}",
}

func TestEmbeddedTemplateHasAllTokens(t *testing.T) {
	text, err := Embedded().Load(context.Background(), DefaultName)
	require.NoError(t, err)
	for _, token := range allTokens {
		require.Contains(t, text, token)
	}
	for _, token := range []string{"{{HEATUP_PLATE}}", "{{PREVENT_RADIANT_HEAT}}", "{{MEASUREMENT_ROUNDS}}", "{{COOLDOWN_PLATE}}"} {
		require.Equal(t, 1, strings.Count(text, token), token)
	}
}

func TestFSSourceMissingTemplate(t *testing.T) {
	_, err := FS(fstest.MapFS{}).Load(context.Background(), "missing.gcode")
	require.ErrorIs(t, err, ErrTemplateUnavailable)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFSSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Embedded().Load(ctx, DefaultName)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.gcode"), []byte("G28 {{PRINTER_MODEL}}\n"), 0o644))

	text, err := Dir(dir).Load(context.Background(), "custom.gcode")
	require.NoError(t, err)
	require.Equal(t, "G28 {{PRINTER_MODEL}}\n", text)
}

func TestFallback(t *testing.T) {
	first := FS(fstest.MapFS{"a.gcode": {Data: []byte("first")}})
	second := FS(fstest.MapFS{
		"a.gcode": {Data: []byte("second")},
		"b.gcode": {Data: []byte("second-b")},
	})
	src := Fallback{first, second}

	text, err := src.Load(context.Background(), "a.gcode")
	require.NoError(t, err)
	require.Equal(t, "first", text)

	text, err = src.Load(context.Background(), "b.gcode")
	require.NoError(t, err)
	require.Equal(t, "second-b", text)

	_, err = src.Load(context.Background(), "c.gcode")
	require.True(t, errors.Is(err, ErrTemplateUnavailable))

	_, err = Fallback{}.Load(context.Background(), "a.gcode")
	require.ErrorIs(t, err, ErrTemplateUnavailable)
}

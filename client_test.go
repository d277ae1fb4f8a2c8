package tram_test

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	tram "github.com/iwtcode/tramGcode"
	"github.com/iwtcode/tramGcode/models"
	apperrors "github.com/iwtcode/tramGcode/pkg/errors"
	"github.com/iwtcode/tramGcode/template"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupTest(t *testing.T, opts ...tram.Option) *tram.Client {
	t.Helper()
	cfg := &tram.Config{TemplateName: template.DefaultName, SoundInName: true, LogLevel: "off"}
	c, err := tram.New(cfg, append([]tram.Option{tram.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err, "failed to create client")
	require.NotNil(t, c)
	return c
}

func validParams() models.Params {
	return models.Params{
		Printer:      models.PrinterH2D,
		Temperature:  models.AmbientTemperature{},
		MeasureCount: 1,
		Times:        models.UniformTime{Seconds: 10},
		Probe:        models.ProbeParameters{TipDistance: 50, ProbeHeight: 10},
		Sound:        models.SoundOff,
	}
}

func TestGenerateWithEmbeddedTemplate(t *testing.T) {
	c := setupTest(t)

	res, err := c.Generate(context.Background(), validParams())
	require.NoError(t, err)
	require.NotEmpty(t, res.JobID)
	require.NotContains(t, res.GCode, "{{")
	require.Contains(t, res.GCode, "Bambu Lab H2D")
	require.Contains(t, res.GCode, "G1 Z53.5 F1800; lower bed safely")
	require.Contains(t, res.GCode, "G1 X186 Y150")
	require.Equal(t, 4, strings.Count(res.GCode, "M400 S10\n"))
	require.Equal(t, 1, strings.Count(res.GCode, "; begin measurement round"))
	require.NotContains(t, res.GCode, "M190")
	require.NotContains(t, res.GCode, "M140 S0")
	require.Equal(t, "H2D_tram_1-round_ambient_tip-50mm_sound-off.gcode", c.Filename(*res))
}

func TestGenerateInvalidParams(t *testing.T) {
	c := setupTest(t)
	p := validParams()
	p.Probe.TipDistance = 5

	res, err := c.Generate(context.Background(), p)
	require.Nil(t, res)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	require.Equal(t, apperrors.InvalidInputCode, apperrors.ExitCode(err))
}

func TestGenerateRejectsNaNDistances(t *testing.T) {
	c := setupTest(t)
	p := validParams()
	p.Probe.TipDistance = math.NaN()
	p.Probe.ProbeHeight = math.NaN()

	res, err := c.Generate(context.Background(), p)
	require.Nil(t, res)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGenerateTemplateUnavailable(t *testing.T) {
	c := setupTest(t, tram.WithSource(template.FS(fstest.MapFS{})))

	_, err := c.Generate(context.Background(), validParams())
	require.ErrorIs(t, err, template.ErrTemplateUnavailable)
	require.Equal(t, apperrors.TemplateUnavailableCode, apperrors.ExitCode(err))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	require.True(t, appErr.IsUserFacing)
}

func TestGenerateWithTemplateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.gcode"), []byte("; {{PRINTER_MODEL}} {{TEMP}}\n{{COOLDOWN_PLATE}}\n"), 0o644))

	c, err := tram.New(&tram.Config{TemplateDir: dir, TemplateName: "short.gcode", LogLevel: "off"})
	require.NoError(t, err)

	p := validParams()
	p.Printer = models.PrinterH2S
	p.Temperature = models.CustomTemperature{Celsius: 60}
	res, err := c.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, "; H2S 60\nM140 S0; cool down heatbed\n", res.GCode)
	require.Equal(t, "H2S_tram_1-round_60C_tip-50mm.gcode", c.Filename(*res))
}

func TestNewWithProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`printers:
  H2D:
    points:
      - {x: 70, y: 50}
      - {x: 280, y: 50}
      - {x: 285, y: 300}
      - {x: 90, y: 300}
    offset: {x: -10, y: 20}
    center: {x: 180, y: 160}
`), 0o644))

	c, err := tram.New(&tram.Config{TemplateName: template.DefaultName, ProfilesPath: path, LogLevel: "off"})
	require.NoError(t, err)

	geo, err := c.Geometry(models.PrinterH2D)
	require.NoError(t, err)
	require.Equal(t, models.Point{Name: models.PointFrontLeft, X: 60, Y: 70}, geo.Points[0])
	require.Equal(t, models.Point{X: 180, Y: 160}, geo.Center)

	geo, err = c.Geometry(models.PrinterH2S)
	require.NoError(t, err)
	require.Equal(t, models.Point{X: 170, Y: 150}, geo.Center)

	_, err = c.Geometry("A1")
	require.ErrorIs(t, err, apperrors.ErrUnknownPrinter)
}

func TestNewWithMissingProfiles(t *testing.T) {
	_, err := tram.New(&tram.Config{ProfilesPath: filepath.Join(t.TempDir(), "nope.yaml"), LogLevel: "off"})
	require.Error(t, err)
}

func TestNewRequiresConfig(t *testing.T) {
	c, err := tram.New(nil)
	require.Nil(t, c)
	require.Error(t, err)
}

package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/tramGcode/models"
)

func TestLoadJobFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`printer: h2s
temp: 60
rounds: 2
times: [60, 45]
tip_distance: 42.5
sound: true
`), 0o644))

	j, err := Load(path)
	require.NoError(t, err)

	p := j.Params()
	require.Equal(t, models.PrinterH2S, p.Printer)
	require.Equal(t, models.CustomTemperature{Celsius: 60}, p.Temperature)
	require.Equal(t, 2, p.MeasureCount)
	require.Equal(t, models.PerRoundTime{Seconds: []int{60, 45}}, p.Times)
	require.Equal(t, models.ProbeParameters{TipDistance: 42.5, ProbeHeight: 10}, p.Probe)
	require.Equal(t, models.SoundOn, p.Sound)
}

func TestLoadJobFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds: [1"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestDefaultParams(t *testing.T) {
	p := Default().Params()
	require.Equal(t, models.PrinterH2D, p.Printer)
	require.Equal(t, models.AmbientTemperature{}, p.Temperature)
	require.Equal(t, models.UniformTime{Seconds: 30}, p.Times)
	require.Equal(t, models.SoundOff, p.Sound)
}

func TestParseTemp(t *testing.T) {
	v, err := ParseTemp("ambient")
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = ParseTemp("65C")
	require.NoError(t, err)
	require.Equal(t, 65, *v)

	_, err = ParseTemp("hot")
	require.Error(t, err)
}

func TestParseTimes(t *testing.T) {
	times, err := ParseTimes("60, 45,30")
	require.NoError(t, err)
	require.Equal(t, []int{60, 45, 30}, times)

	times, err = ParseTimes("")
	require.NoError(t, err)
	require.Nil(t, times)

	_, err = ParseTimes("60,x")
	require.Error(t, err)
}

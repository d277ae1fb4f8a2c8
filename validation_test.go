package tram

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/tramGcode/models"
	apperrors "github.com/iwtcode/tramGcode/pkg/errors"
)

func params() models.Params {
	return models.Params{
		Printer:      models.PrinterH2S,
		Temperature:  models.CustomTemperature{Celsius: 60},
		MeasureCount: 3,
		Times:        models.PerRoundTime{Seconds: DefaultPerRoundTimes(3)},
		Probe:        models.ProbeParameters{TipDistance: 50, ProbeHeight: 10},
		Sound:        models.SoundOn,
	}
}

func fields(err error) []string {
	var out []string
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return nil
	}
	for _, e := range joined.Unwrap() {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe.Field)
		}
	}
	return out
}

func TestValidateAcceptsValidParams(t *testing.T) {
	require.NoError(t, Validate(params()))

	p := params()
	p.Temperature = models.AmbientTemperature{}
	p.Times = models.UniformTime{Seconds: 1}
	p.Sound = models.SoundOff
	p.MeasureCount = 1
	p.Probe = models.ProbeParameters{TipDistance: 10, ProbeHeight: 3}
	require.NoError(t, Validate(p))

	p.Probe = models.ProbeParameters{TipDistance: 100, ProbeHeight: 50}
	p.Temperature = models.CustomTemperature{Celsius: 120}
	require.NoError(t, Validate(p))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *models.Params)
		field  string
	}{
		{"unknown printer", func(p *models.Params) { p.Printer = "P1S" }, "printer"},
		{"temp too high", func(p *models.Params) { p.Temperature = models.CustomTemperature{Celsius: 121} }, "temp"},
		{"temp negative", func(p *models.Params) { p.Temperature = models.CustomTemperature{Celsius: -1} }, "temp"},
		{"no temp mode", func(p *models.Params) { p.Temperature = nil }, "temp"},
		{"zero rounds", func(p *models.Params) { p.MeasureCount = 0; p.Times = models.UniformTime{Seconds: 10} }, "measure_count"},
		{"four rounds", func(p *models.Params) { p.MeasureCount = 4; p.Times = models.UniformTime{Seconds: 10} }, "measure_count"},
		{"uniform too long", func(p *models.Params) { p.Times = models.UniformTime{Seconds: 1000} }, "time"},
		{"per round length", func(p *models.Params) { p.Times = models.PerRoundTime{Seconds: []int{10, 10}} }, "time"},
		{"per round value", func(p *models.Params) { p.Times = models.PerRoundTime{Seconds: []int{10, 0, 10}} }, "time"},
		{"one second with sound", func(p *models.Params) { p.Times = models.UniformTime{Seconds: 1} }, "time"},
		{"no time mode", func(p *models.Params) { p.Times = nil }, "time"},
		{"tip too short", func(p *models.Params) { p.Probe.TipDistance = 9.9 }, "tip_distance"},
		{"probe too high", func(p *models.Params) { p.Probe.ProbeHeight = 50.5 }, "probe_height"},
		{"tip NaN", func(p *models.Params) { p.Probe.TipDistance = math.NaN() }, "tip_distance"},
		{"tip +Inf", func(p *models.Params) { p.Probe.TipDistance = math.Inf(1) }, "tip_distance"},
		{"height NaN", func(p *models.Params) { p.Probe.ProbeHeight = math.NaN() }, "probe_height"},
		{"height -Inf", func(p *models.Params) { p.Probe.ProbeHeight = math.Inf(-1) }, "probe_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			tt.modify(&p)
			err := Validate(p)
			require.Error(t, err)
			require.ErrorIs(t, err, apperrors.ErrInvalidInput)
			require.Equal(t, []string{tt.field}, fields(err))
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	p := params()
	p.Printer = ""
	p.Probe = models.ProbeParameters{}

	err := Validate(p)
	require.Equal(t, []string{"printer", "tip_distance", "probe_height"}, fields(err))
	require.Contains(t, err.Error(), "Please select a printer model.")
	require.Contains(t, err.Error(), "Tip distance must be between 10 and 100 mm.")
}

func TestDefaultPerRoundTimes(t *testing.T) {
	require.Equal(t, []int{60}, DefaultPerRoundTimes(1))
	require.Equal(t, []int{60, 45, 30}, DefaultPerRoundTimes(3))
}

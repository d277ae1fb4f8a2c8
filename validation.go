package tram

import (
	"errors"
	"fmt"

	"github.com/iwtcode/tramGcode/models"
	apperrors "github.com/iwtcode/tramGcode/pkg/errors"
)

// Допустимые диапазоны параметров формы
const (
	MinTemp         = 0
	MaxTemp         = 120
	MinTime         = 1
	MaxTime         = 999
	MinSoundTime    = 2
	MinMeasureCount = 1
	MaxMeasureCount = 3
	MinTipDistance  = 10.0
	MaxTipDistance  = 100.0
	MinProbeHeight  = 3.0
	MaxProbeHeight  = 50.0
)

// FieldError описывает ошибку одного поля параметров.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// Validate проверяет параметры до генерации и возвращает все найденные ошибки сразу.
func Validate(p models.Params) error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, &FieldError{Field: field, Message: msg})
	}

	switch p.Printer {
	case models.PrinterH2D, models.PrinterH2S, models.PrinterH2C:
	default:
		add("printer", "Please select a printer model.")
	}

	switch t := p.Temperature.(type) {
	case models.AmbientTemperature:
	case models.CustomTemperature:
		if t.Celsius < MinTemp || t.Celsius > MaxTemp {
			add("temp", "Bed Temperature must be between 0°C and 120°C.")
		}
	default:
		add("temp", "Please select a temperature mode.")
	}

	countValid := p.MeasureCount >= MinMeasureCount && p.MeasureCount <= MaxMeasureCount
	if !countValid {
		add("measure_count", fmt.Sprintf("Measure count must be between %d and %d.", MinMeasureCount, MaxMeasureCount))
	}

	minTime := MinTime
	if p.Sound == models.SoundOn {
		minTime = MinSoundTime
	}

	switch t := p.Times.(type) {
	case models.UniformTime:
		if t.Seconds < minTime || t.Seconds > MaxTime {
			add("time", fmt.Sprintf("Time must be between %d and %d seconds.", minTime, MaxTime))
		}
	case models.PerRoundTime:
		if countValid && len(t.Seconds) != p.MeasureCount {
			add("time", fmt.Sprintf("Expected %d round times, got %d.", p.MeasureCount, len(t.Seconds)))
		}
		for _, s := range t.Seconds {
			if s < minTime || s > MaxTime {
				add("time", fmt.Sprintf("All times must be between %d and %d seconds.", minTime, MaxTime))
				break
			}
		}
	default:
		add("time", "Please select a time mode.")
	}

	if !inRange(p.Probe.TipDistance, MinTipDistance, MaxTipDistance) {
		add("tip_distance", "Tip distance must be between 10 and 100 mm.")
	}
	if !inRange(p.Probe.ProbeHeight, MinProbeHeight, MaxProbeHeight) {
		add("probe_height", "Probe height must be between 3 and 50 mm.")
	}

	return errors.Join(errs...)
}

// inRange возвращает false для NaN; ±Inf выходят за любой конечный диапазон.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// DefaultPerRoundTimes возвращает значения по умолчанию для раздельного времени: 60, 45, затем 30 секунд.
func DefaultPerRoundTimes(measureCount int) []int {
	times := make([]int, measureCount)
	for i := range times {
		switch i {
		case 0:
			times[i] = 60
		case 1:
			times[i] = 45
		default:
			times[i] = 30
		}
	}
	return times
}

package gcode

import (
	"strconv"

	"github.com/iwtcode/tramGcode/models"
)

// Engine генерирует программу трамминга из проверенных параметров.
// Engine не хранит изменяемого состояния и может использоваться из нескольких горутин.
type Engine struct {
	geometry Registry
}

// NewEngine создает генератор с заданным реестром координат.
// При nil используется DefaultRegistry.
func NewEngine(r Registry) *Engine {
	if r == nil {
		r = DefaultRegistry()
	}
	return &Engine{geometry: r}
}

// Geometry возвращает таблицу координат, которую генератор использует для модели.
func (e *Engine) Geometry(p models.PrinterModel) (Geometry, bool) {
	return e.geometry.Lookup(p)
}

// Generate заполняет шаблон для набора параметров.
// Параметры должны быть проверены заранее, иначе вызывается panic.
func (e *Engine) Generate(template string, p models.Params) models.Result {
	geo := e.geometry.ResolveGeometry(p.Printer)
	times := ResolveTimes(p.Times, p.MeasureCount)
	temp := models.Celsius(p.Temperature)
	blocks := BuildTemperatureBlocks(p.Temperature, p.Probe)
	rounds := BuildRounds(geo.Points, p.MeasureCount, times, p.Probe, p.Sound)

	text := Assemble(template, Substitutions{
		Global: map[string]string{
			TokenPrinterModel:     string(p.Printer),
			TokenTipDistance:      models.FormatNumber(p.Probe.TipDistance),
			TokenTemp:             strconv.Itoa(temp),
			TokenTipDistanceSafe:  models.FormatNumber(p.Probe.SafeDistance()),
			TokenTipDistanceProbe: models.FormatNumber(p.Probe.ProbeHeight),
			TokenCenterX:          models.FormatNumber(geo.Center.X),
			TokenCenterY:          models.FormatNumber(geo.Center.Y),
		},
		Structural: map[string]string{
			TokenHeatupPlate:        blocks.Heatup,
			TokenPreventRadiantHeat: blocks.PreventRadiantHeat,
			TokenMeasurementRounds:  rounds,
		},
		Cooldown: blocks.Cooldown,
	})

	return models.Result{
		GCode:        text,
		Printer:      p.Printer,
		MeasureCount: p.MeasureCount,
		Temp:         temp,
		TipDistance:  p.Probe.TipDistance,
		TempMode:     p.Temperature,
		Sound:        p.Sound,
	}
}

package tram

import (
	"fmt"

	"github.com/iwtcode/tramGcode/models"
)

// Filename строит имя файла для сохранения результата, например
// H2D_tram_2-rounds_60C_tip-50mm_sound-on.gcode.
func Filename(r models.Result, withSound bool) string {
	roundLabel := "rounds"
	if r.MeasureCount == 1 {
		roundLabel = "round"
	}

	mode := r.TempMode
	if mode == nil {
		mode = models.AmbientTemperature{}
		if r.Temp != 0 {
			mode = models.CustomTemperature{Celsius: r.Temp}
		}
	}

	name := fmt.Sprintf("%s_tram_%d-%s_%s_tip-%smm", r.Printer, r.MeasureCount, roundLabel, mode.Label(), models.FormatNumber(r.TipDistance))
	if withSound {
		name += "_" + r.Sound.Label()
	}
	return name + ".gcode"
}

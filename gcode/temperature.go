package gcode

import (
	"fmt"

	"github.com/iwtcode/tramGcode/models"
)

const (
	// RadiantHeatZ - высота, на которую опускается стол на время прогрева.
	RadiantHeatZ  = 160
	heatSoakDwell = 180
	lowerFeedRate = 1800
)

// TemperatureBlocks содержит фрагменты нагрева, защиты от теплового излучения и охлаждения.
type TemperatureBlocks struct {
	Heatup             string
	PreventRadiantHeat string
	Cooldown           string
}

// BuildTemperatureBlocks строит фрагменты для режима нагрева стола.
// Высота опускания стола зависит от режима: фиксированная при нагреве,
// безопасная высота щупа без нагрева.
func BuildTemperatureBlocks(mode models.TemperatureMode, probe models.ProbeParameters) TemperatureBlocks {
	switch t := mode.(type) {
	case models.CustomTemperature:
		return TemperatureBlocks{
			Heatup: fmt.Sprintf("\nM190 S%d; set heatbed to user defined temperature\n", t.Celsius),
			PreventRadiantHeat: fmt.Sprintf("G1 Z%d F%d; move bed down to keep radiant heat away from printed part and indicator\n", RadiantHeatZ, lowerFeedRate) +
				fmt.Sprintf("M400 S%d; wait 3 minutes for bed heatsoak", heatSoakDwell),
			Cooldown: "M140 S0; cool down heatbed\n",
		}
	case models.AmbientTemperature:
		return TemperatureBlocks{
			PreventRadiantHeat: fmt.Sprintf("G1 Z%s F%d; lower bed safely", models.FormatNumber(probe.SafeDistance()), lowerFeedRate),
		}
	default:
		panic("gcode: unknown temperature mode")
	}
}

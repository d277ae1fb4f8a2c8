package gcode

import (
	"fmt"
	"strings"

	"github.com/iwtcode/tramGcode/models"
)

const (
	liftFeedRate   = 1200
	travelFeedRate = 4800
	zeroingDwell   = 5
	roundSeparator = "========================"
)

// BuildRounds строит текст measureCount раундов замера.
// Время раунда i берется из times[i-1], длину times гарантирует вызывающий.
func BuildRounds(points [4]models.Point, measureCount int, times []int, probe models.ProbeParameters, sound models.SoundPreference) string {
	safe := models.FormatNumber(probe.SafeDistance())
	probeZ := models.FormatNumber(probe.ProbeHeight)

	var b strings.Builder
	for i := 1; i <= measureCount; i++ {
		fmt.Fprintf(&b, "; begin measurement round %d %s\n", i, roundSeparator)
		for p, pt := range points {
			fmt.Fprintf(&b, "G1 Z%s F%d\n", safe, liftFeedRate)
			fmt.Fprintf(&b, "G1 F%d\n", travelFeedRate)
			fmt.Fprintf(&b, "G1 X%s Y%s Z%s; %s\n", models.FormatNumber(pt.X), models.FormatNumber(pt.Y), safe, pt.Name)
			fmt.Fprintf(&b, "G1 Z%s\n", probeZ)

			// Обнуление индикатора только на первой точке первого раунда
			if i == 1 && p == 0 {
				if sound {
					writeZeroingBeep(&b)
				}
				fmt.Fprintf(&b, "M400 S%d; wait additional 5 seconds at probe height for zeroing indicator\n", zeroingDwell)
			}

			writeDwell(&b, times[i-1], sound)
			if p < len(points)-1 {
				b.WriteByte('\n')
			}
		}
		fmt.Fprintf(&b, "; end measurement round %d %s\n\n", i, roundSeparator)
	}

	return strings.TrimSpace(b.String())
}

// writeDwell добавляет выдержку на точке. Со звуком последняя секунда
// отводится под сигнал, общее время выдержки сохраняется.
func writeDwell(b *strings.Builder, seconds int, sound models.SoundPreference) {
	switch sound {
	case models.SoundOn:
		fmt.Fprintf(b, "M400 S%d\n", seconds-1)
		writePointBeep(b)
		b.WriteString("M400 S1\n")
	case models.SoundOff:
		fmt.Fprintf(b, "M400 S%d\n", seconds)
	}
}

package gcode

import "strings"

// Команды звуковых сигналов. Параметры M1006 задают высоту и длительность нот
// и используются как готовые шаблоны.
const (
	soundFlush = "M400"
	soundWait  = "M1006 W"

	beepZeroingStart = "M1006 A53 B10 L99 C53 D10 M99 E53 F10 N99"
	beepZeroingEnd   = "M1006 A57 B10 L99 C57 D10 M99 E57 F10 N99"
	beepPointDone    = "M1006 A49 B20 L99 C49 D20 M99 E49 F20 N99"
)

// writeZeroingBeep добавляет сигнал о начале обнуления индикатора.
func writeZeroingBeep(b *strings.Builder) {
	for _, line := range []string{soundFlush, beepZeroingStart, beepZeroingEnd, soundWait} {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// writePointBeep добавляет сигнал о завершении замера точки.
func writePointBeep(b *strings.Builder) {
	for _, line := range []string{soundFlush, beepPointDone, soundWait} {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

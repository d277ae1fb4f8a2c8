package gcode

import "github.com/iwtcode/tramGcode/models"

// ResolveTimes возвращает время выдержки для каждого раунда.
// Для PerRoundTime длина среза не проверяется: ее гарантирует валидатор.
func ResolveTimes(mode models.TimeMode, measureCount int) []int {
	switch m := mode.(type) {
	case models.UniformTime:
		times := make([]int, measureCount)
		for i := range times {
			times[i] = m.Seconds
		}
		return times
	case models.PerRoundTime:
		return append([]int(nil), m.Seconds...)
	default:
		panic("gcode: unknown time mode")
	}
}

package gcode

import (
	"regexp"
	"strings"
)

// Имена плейсхолдеров шаблона
const (
	TokenPrinterModel       = "{{PRINTER_MODEL}}"
	TokenTipDistance        = "{{TIP_DISTANCE}}"
	TokenTemp               = "{{TEMP}}"
	TokenTipDistanceSafe    = "{{TIP_DISTANCE_SAFE}}"
	TokenTipDistanceProbe   = "{{TIP_DISTANCE_PROBE}}"
	TokenCenterX            = "{{CENTER_X}}"
	TokenCenterY            = "{{CENTER_Y}}"
	TokenHeatupPlate        = "{{HEATUP_PLATE}}"
	TokenPreventRadiantHeat = "{{PREVENT_RADIANT_HEAT}}"
	TokenMeasurementRounds  = "{{MEASUREMENT_ROUNDS}}"
	TokenCooldownPlate      = "{{COOLDOWN_PLATE}}"
)

// Tokens возвращает все плейсхолдеры, которые распознает сборщик.
func Tokens() []string {
	return []string{
		TokenPrinterModel, TokenTipDistance, TokenTemp, TokenTipDistanceSafe,
		TokenTipDistanceProbe, TokenCenterX, TokenCenterY,
		TokenHeatupPlate, TokenPreventRadiantHeat, TokenMeasurementRounds, TokenCooldownPlate,
	}
}

// Строка охлаждения удаляется вместе со своим переводом строки,
// чтобы при пустом фрагменте не оставалась пустая строка.
var cooldownLine = regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(TokenCooldownPlate) + `\s*\r?\n?`)

// Substitutions содержит значения для подстановки в шаблон.
type Substitutions struct {
	// Global заменяются во всех вхождениях.
	Global map[string]string
	// Structural заменяются только в первом вхождении.
	Structural map[string]string
	// Cooldown заменяет строку с плейсхолдером охлаждения целиком.
	Cooldown string
}

// structuralOrder фиксирует порядок структурных замен.
var structuralOrder = []string{TokenHeatupPlate, TokenPreventRadiantHeat, TokenMeasurementRounds}

// Assemble подставляет значения в шаблон и возвращает новый текст.
// Исходная строка шаблона не изменяется.
func Assemble(template string, subs Substitutions) string {
	pairs := make([]string, 0, 2*len(subs.Global))
	for _, token := range Tokens() {
		if v, ok := subs.Global[token]; ok {
			pairs = append(pairs, token, v)
		}
	}
	out := strings.NewReplacer(pairs...).Replace(template)

	for _, token := range structuralOrder {
		if v, ok := subs.Structural[token]; ok {
			out = strings.Replace(out, token, v, 1)
		}
	}

	if loc := cooldownLine.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + subs.Cooldown + out[loc[1]:]
	}
	return out
}

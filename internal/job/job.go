package job

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iwtcode/tramGcode/models"
)

// Job - параметры генерации в том виде, в каком их задает пользователь
// в YAML-файле задания или флагами командной строки.
type Job struct {
	Printer     string  `yaml:"printer"`
	Temp        *int    `yaml:"temp"` // nil - без нагрева
	Rounds      int     `yaml:"rounds"`
	Time        int     `yaml:"time"`  // одинаковое время для всех раундов
	Times       []int   `yaml:"times"` // время по раундам, имеет приоритет над Time
	TipDistance float64 `yaml:"tip_distance"`
	ProbeHeight float64 `yaml:"probe_height"`
	Sound       bool    `yaml:"sound"`
}

// Default возвращает задание со значениями по умолчанию.
func Default() Job {
	return Job{
		Printer:     string(models.PrinterH2D),
		Rounds:      3,
		Time:        30,
		TipDistance: 50,
		ProbeHeight: 10,
	}
}

// Load читает YAML-файл задания поверх значений по умолчанию.
func Load(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	j := Default()
	if err := yaml.Unmarshal(data, &j); err != nil {
		return Job{}, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return j, nil
}

// ParseTemp разбирает значение температуры: "ambient" или целое число градусов.
func ParseTemp(s string) (*int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "ambient" {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSuffix(s, "c"))
	if err != nil {
		return nil, fmt.Errorf("invalid temperature %q: %w", s, err)
	}
	return &v, nil
}

// ParseTimes разбирает список времен через запятую, например "60,45,30".
func ParseTimes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	times := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid round time %q: %w", part, err)
		}
		times = append(times, v)
	}
	return times, nil
}

// Params преобразует задание в параметры генерации. Диапазоны не проверяются.
func (j Job) Params() models.Params {
	var temp models.TemperatureMode = models.AmbientTemperature{}
	if j.Temp != nil {
		temp = models.CustomTemperature{Celsius: *j.Temp}
	}

	var times models.TimeMode = models.UniformTime{Seconds: j.Time}
	if len(j.Times) > 0 {
		times = models.PerRoundTime{Seconds: append([]int(nil), j.Times...)}
	}

	return models.Params{
		Printer:      models.PrinterModel(strings.ToUpper(strings.TrimSpace(j.Printer))),
		Temperature:  temp,
		MeasureCount: j.Rounds,
		Times:        times,
		Probe: models.ProbeParameters{
			TipDistance: j.TipDistance,
			ProbeHeight: j.ProbeHeight,
		},
		Sound: models.SoundPreference(j.Sound),
	}
}

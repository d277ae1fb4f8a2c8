package models

import "strconv"

// PrinterModel определяет поддерживаемую модель принтера серии H2.
type PrinterModel string

const (
	PrinterH2D PrinterModel = "H2D"
	PrinterH2S PrinterModel = "H2S"
	PrinterH2C PrinterModel = "H2C"
)

// Printers возвращает все поддерживаемые модели в порядке отображения.
func Printers() []PrinterModel {
	return []PrinterModel{PrinterH2D, PrinterH2S, PrinterH2C}
}

// Названия точек замера в фиксированном порядке обхода
const (
	PointFrontLeft  = "Front Left"
	PointFrontRight = "Front Right"
	PointBackRight  = "Back Right"
	PointBackLeft   = "Back Left"
)

// PointNames возвращает названия четырех точек в порядке обхода.
func PointNames() [4]string {
	return [4]string{PointFrontLeft, PointFrontRight, PointBackRight, PointBackLeft}
}

// Point содержит координаты точки на столе в миллиметрах
type Point struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// TemperatureMode - закрытый набор режимов нагрева стола.
// Реализации: AmbientTemperature и CustomTemperature.
type TemperatureMode interface {
	temperatureMode()
	// Label возвращает метку режима для имени файла ("ambient" или "<N>C").
	Label() string
}

// AmbientTemperature - замер без нагрева стола.
type AmbientTemperature struct{}

// CustomTemperature - замер при заданной температуре стола в градусах Цельсия.
type CustomTemperature struct {
	Celsius int
}

func (AmbientTemperature) temperatureMode() {}
func (CustomTemperature) temperatureMode()  {}

func (AmbientTemperature) Label() string  { return "ambient" }
func (t CustomTemperature) Label() string { return strconv.Itoa(t.Celsius) + "C" }

// Celsius возвращает температуру, подставляемую в шаблон (0 для AmbientTemperature).
func Celsius(mode TemperatureMode) int {
	if t, ok := mode.(CustomTemperature); ok {
		return t.Celsius
	}
	return 0
}

// TimeMode - закрытый набор режимов выдержки на точке.
// Реализации: UniformTime и PerRoundTime.
type TimeMode interface {
	timeMode()
}

// UniformTime - одинаковое время выдержки для всех раундов.
type UniformTime struct {
	Seconds int
}

// PerRoundTime - отдельное время выдержки для каждого раунда.
// Длина Seconds должна совпадать с количеством раундов.
type PerRoundTime struct {
	Seconds []int
}

func (UniformTime) timeMode()  {}
func (PerRoundTime) timeMode() {}

// SoundPreference определяет, подавать ли звуковые сигналы в ключевых точках.
type SoundPreference bool

const (
	SoundOff SoundPreference = false
	SoundOn  SoundPreference = true
)

// Label возвращает метку для имени файла.
func (s SoundPreference) Label() string {
	if s {
		return "sound-on"
	}
	return "sound-off"
}

// SafeClearance - зазор между высотой щупа и безопасной высотой перемещения, мм.
const SafeClearance = 3.5

// ProbeParameters содержит параметры индикатора
type ProbeParameters struct {
	TipDistance float64 `json:"tip_distance"`
	ProbeHeight float64 `json:"probe_height"`
}

// SafeDistance возвращает безопасную высоту перемещения.
func (p ProbeParameters) SafeDistance() float64 {
	return p.TipDistance + SafeClearance
}

// Params содержит полный набор проверенных параметров генерации.
type Params struct {
	Printer      PrinterModel
	Temperature  TemperatureMode
	MeasureCount int
	Times        TimeMode
	Probe        ProbeParameters
	Sound        SoundPreference
}

// Result содержит сгенерированный G-код и метаданные для отображения и имени файла.
type Result struct {
	JobID        string          `json:"job_id,omitempty"`
	GCode        string          `json:"-"`
	Printer      PrinterModel    `json:"printer"`
	MeasureCount int             `json:"measure_count"`
	Temp         int             `json:"temp"`
	TipDistance  float64         `json:"tip_distance"`
	TempMode     TemperatureMode `json:"-"`
	Sound        SoundPreference `json:"sound"`
}

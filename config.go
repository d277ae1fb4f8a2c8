package tram

import (
	"os"
	"strconv"
)

// Config хранит модель конфигурации клиента генерации
type Config struct {
	TemplateDir  string
	TemplateName string
	ProfilesPath string
	SoundInName  bool
	LogLevel     string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	templateName := os.Getenv("TRAM_TEMPLATE_NAME")
	if templateName == "" {
		templateName = "h2_series_template.gcode"
	}

	soundInName, err := strconv.ParseBool(os.Getenv("TRAM_FILENAME_SOUND"))
	if err != nil {
		soundInName = true
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		TemplateDir:  os.Getenv("TRAM_TEMPLATE_DIR"),
		TemplateName: templateName,
		ProfilesPath: os.Getenv("TRAM_PROFILES"),
		SoundInName:  soundInName,
		LogLevel:     logLevel,
	}
}

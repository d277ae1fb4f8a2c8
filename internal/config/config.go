package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	OutputDir string
	Templates TemplatesConfig
	Profiles  string
	Filename  FilenameConfig
	Logging   LoggerConfig
}

// TemplatesConfig содержит настройки источника шаблонов
type TemplatesConfig struct {
	Dir  string
	Name string
}

// FilenameConfig содержит настройки имени выходного файла
type FilenameConfig struct {
	SoundLabel bool
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		OutputDir: getEnv("TRAM_OUTPUT_DIR", "."),
		Templates: TemplatesConfig{
			Dir:  getEnv("TRAM_TEMPLATE_DIR", ""),
			Name: getEnv("TRAM_TEMPLATE_NAME", "h2_series_template.gcode"),
		},
		Profiles: getEnv("TRAM_PROFILES", ""),
		Filename: FilenameConfig{
			SoundLabel: getEnvAsBool("TRAM_FILENAME_SOUND", true),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", ""),
			Level:      getEnv("LOGGER_LOG_LEVEL", "INFO"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return val
}

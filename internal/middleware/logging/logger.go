package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Enabled    bool   // Включено ли логирование
	Level      string // DEBUG, INFO, WARN, ERROR
	LogsDir    string // Директория для логов
	SavingDays uint   // Сколько дней хранить логи
}

// Logger оборачивает logrus.Logger и файл текущего дня.
type Logger struct {
	*logrus.Logger
	config *Config
	file   *os.File
}

// NewLogger создает логгер. Логи пишутся в stderr и, если задан LogsDir,
// в файл YYYY-MM-DD.log. Файлы старше SavingDays удаляются при создании.
func NewLogger(cfg *Config) *Logger {
	l := &Logger{
		Logger: logrus.New(),
		config: cfg,
	}

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if !cfg.Enabled {
		l.SetOutput(io.Discard)
		return l
	}

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	var output io.Writer = os.Stderr
	if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err == nil {
			logFile := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
			if file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				l.file = file
				output = io.MultiWriter(os.Stderr, file)
			}
		}
	}
	l.SetOutput(output)

	if cfg.LogsDir != "" && cfg.SavingDays > 0 {
		l.CleanOldLogs(time.Now())
	}

	return l
}

// CleanOldLogs удаляет файлы логов, измененные раньше now минус SavingDays.
func (l *Logger) CleanOldLogs(now time.Time) {
	files, err := os.ReadDir(l.config.LogsDir)
	if err != nil {
		l.WithError(err).Error("Failed to read logs directory")
		return
	}

	cutoff := now.AddDate(0, 0, -int(l.config.SavingDays))
	for _, file := range files {
		if info, err := file.Info(); err == nil && !file.IsDir() && info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(l.config.LogsDir, file.Name())); err != nil {
				l.WithError(err).WithField("file", file.Name()).Error("Failed to delete old log file")
			}
		}
	}
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

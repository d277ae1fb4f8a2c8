package tram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/iwtcode/tramGcode/gcode"
	"github.com/iwtcode/tramGcode/internal/profiles"
	"github.com/iwtcode/tramGcode/models"
	apperrors "github.com/iwtcode/tramGcode/pkg/errors"
	"github.com/iwtcode/tramGcode/template"
	"github.com/sirupsen/logrus"
)

// Client является основной точкой входа для генерации программ трамминга.
type Client struct {
	engine *gcode.Engine
	source template.Source
	config *Config
	logger *logrus.Logger
}

// Option настраивает Client при создании.
type Option func(*Client)

// WithLogger задает внешний логгер вместо создаваемого по конфигурации.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithSource задает источник шаблонов.
func WithSource(src template.Source) Option {
	return func(c *Client) { c.source = src }
}

// WithRegistry задает реестр координат принтеров.
func WithRegistry(r gcode.Registry) Option {
	return func(c *Client) { c.engine = gcode.NewEngine(r) }
}

// New создает и возвращает новый экземпляр клиента.
// cfg обязателен, обычно его получают через Load().
// Профили калибровки из cfg.ProfilesPath применяются поверх встроенных таблиц.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	c := &Client{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = newLogger(cfg.LogLevel)
	}

	if c.source == nil {
		if cfg.TemplateDir != "" {
			c.source = template.Fallback{template.Dir(cfg.TemplateDir), template.Embedded()}
		} else {
			c.source = template.Embedded()
		}
	}

	if c.engine == nil {
		registry := gcode.DefaultRegistry()
		if cfg.ProfilesPath != "" {
			f, err := profiles.Load(cfg.ProfilesPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load calibration profiles: %w", err)
			}
			registry = f.Apply(registry)
			c.logger.WithField("path", cfg.ProfilesPath).Info("Calibration profiles loaded")
		}
		c.engine = gcode.NewEngine(registry)
	}

	return c, nil
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()

	if level == "off" || level == "none" {
		logger.SetOutput(io.Discard)
	} else {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logger.SetLevel(lvl)
		logger.SetOutput(os.Stderr)
	}

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

// Generate проверяет параметры, получает шаблон и заполняет его.
func (c *Client) Generate(ctx context.Context, p models.Params) (*models.Result, error) {
	jobID := uuid.NewString()
	log := c.logger.WithFields(logrus.Fields{
		"job_id":  jobID,
		"printer": p.Printer,
		"rounds":  p.MeasureCount,
	})

	if err := Validate(p); err != nil {
		log.WithError(err).Warn("Invalid generation parameters")
		return nil, apperrors.NewAppError(apperrors.InvalidInputCode, apperrors.InvalidInput, err, true)
	}

	text, err := c.source.Load(ctx, c.config.TemplateName)
	if err != nil {
		log.WithError(err).Error("Failed to load template")
		return nil, apperrors.NewAppError(apperrors.TemplateUnavailableCode, apperrors.TemplateUnavailable, err, true)
	}

	result := c.engine.Generate(text, p)
	result.JobID = jobID
	log.WithField("bytes", len(result.GCode)).Debug("G-code generated")
	return &result, nil
}

// Filename возвращает имя файла для результата с учетом настроек клиента.
func (c *Client) Filename(r models.Result) string {
	return Filename(r, c.config.SoundInName)
}

// Geometry возвращает точки и центр стола, используемые для модели.
func (c *Client) Geometry(p models.PrinterModel) (gcode.Geometry, error) {
	geo, ok := c.engine.Geometry(p)
	if !ok {
		return gcode.Geometry{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownPrinter, p)
	}
	return geo, nil
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

package app

import (
	"context"
	"io"

	tram "github.com/iwtcode/tramGcode"
	"github.com/iwtcode/tramGcode/internal/config"
	"github.com/iwtcode/tramGcode/internal/interfaces"
	"github.com/iwtcode/tramGcode/internal/middleware/logging"
	"github.com/iwtcode/tramGcode/internal/usecases"
	"github.com/iwtcode/tramGcode/models"

	"go.uber.org/fx"
)

// Request описывает одну генерацию, выполняемую приложением при старте.
type Request struct {
	Params models.Params
	// OutputDir переопределяет TRAM_OUTPUT_DIR, если не пуст.
	OutputDir string
	// Stdout, если задан, получает текст программы вместо записи в файл.
	Stdout io.Writer
	// OnDone вызывается после успешной генерации. path пуст при выводе в Stdout.
	OnDone func(path string, r *models.Result)
}

// New создает новый экземпляр fx.App
func New(req Request) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Supply(req),
		ConfigModule,
		fx.Decorate(OverrideOutputDir),
		LoggingModule,
		GeneratorModule,
		UsecaseModule,
		fx.Invoke(InvokeGenerate),
	)
}

// Run запускает приложение, выполняет генерацию и останавливает его.
func Run(ctx context.Context, req Request) error {
	application := New(req)
	if err := application.Err(); err != nil {
		return err
	}
	if err := application.Start(ctx); err != nil {
		return err
	}
	return application.Stop(ctx)
}

// --- Модули FX ---

// OverrideOutputDir применяет каталог из запроса поверх конфигурации.
func OverrideOutputDir(cfg *config.AppConfig, req Request) *config.AppConfig {
	if req.OutputDir == "" {
		return cfg
	}
	out := *cfg
	out.OutputDir = req.OutputDir
	return &out
}

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(lc fx.Lifecycle, cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	logger := logging.NewLogger(loggerCfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
	return logger
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

// ProvideGenerator создает клиент генерации на основе конфигурации приложения.
func ProvideGenerator(cfg *config.AppConfig, logger *logging.Logger) (interfaces.Generator, error) {
	client, err := tram.New(&tram.Config{
		TemplateDir:  cfg.Templates.Dir,
		TemplateName: cfg.Templates.Name,
		ProfilesPath: cfg.Profiles,
		SoundInName:  cfg.Filename.SoundLabel,
		LogLevel:     cfg.Logging.Level,
	}, tram.WithLogger(logger.Logger))
	if err != nil {
		return nil, err
	}
	return client, nil
}

var GeneratorModule = fx.Module("generator_module",
	fx.Provide(ProvideGenerator),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

// InvokeGenerate выполняет генерацию при старте приложения.
func InvokeGenerate(lc fx.Lifecycle, uc interfaces.Usecases, req Request, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.WithField("printer", req.Params.Printer).Info("Generating tramming G-code...")

			var (
				path   string
				result *models.Result
				err    error
			)
			if req.Stdout != nil {
				result, err = uc.GenerateToWriter(ctx, req.Params, req.Stdout)
			} else {
				path, result, err = uc.GenerateToFile(ctx, req.Params)
			}
			if err != nil {
				logger.WithError(err).Error("Generation failed")
				return err
			}

			if req.OnDone != nil {
				req.OnDone(path, result)
			}
			return nil
		},
	})
}

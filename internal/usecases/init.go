package usecases

import (
	"github.com/iwtcode/tramGcode/internal/config"
	"github.com/iwtcode/tramGcode/internal/interfaces"
	"github.com/iwtcode/tramGcode/internal/middleware/logging"
)

// NewUsecases - конструктор для Usecases
func NewUsecases(
	generator interfaces.Generator,
	cfg *config.AppConfig,
	logger *logging.Logger,
) interfaces.Usecases {
	return NewUsecase(generator, cfg.OutputDir, logger)
}

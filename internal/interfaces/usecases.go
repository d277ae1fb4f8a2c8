package interfaces

import (
	"context"
	"io"

	"github.com/iwtcode/tramGcode/models"
)

// Generator определяет контракт генерации G-кода из параметров.
type Generator interface {
	Generate(ctx context.Context, p models.Params) (*models.Result, error)
	Filename(r models.Result) string
}

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	// GenerateToFile генерирует программу и сохраняет ее в выходной каталог.
	GenerateToFile(ctx context.Context, p models.Params) (string, *models.Result, error)
	// GenerateToWriter генерирует программу и пишет ее текст в w.
	GenerateToWriter(ctx context.Context, p models.Params, w io.Writer) (*models.Result, error)
}

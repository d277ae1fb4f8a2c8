package usecases

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwtcode/tramGcode/internal/interfaces"
	"github.com/iwtcode/tramGcode/models"
	"github.com/sirupsen/logrus"
)

type Usecase struct {
	generator interfaces.Generator
	outputDir string
	logger    logrus.FieldLogger
}

func NewUsecase(generator interfaces.Generator, outputDir string, logger logrus.FieldLogger) interfaces.Usecases {
	return &Usecase{
		generator: generator,
		outputDir: outputDir,
		logger:    logger,
	}
}

func (u *Usecase) GenerateToFile(ctx context.Context, p models.Params) (string, *models.Result, error) {
	result, err := u.generator.Generate(ctx, p)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(u.outputDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create output dir %s: %w", u.outputDir, err)
	}

	path := filepath.Join(u.outputDir, u.generator.Filename(*result))
	if err := os.WriteFile(path, []byte(result.GCode), 0644); err != nil {
		return "", nil, fmt.Errorf("failed to write G-code to %s: %w", path, err)
	}

	u.logger.WithFields(logrus.Fields{"job_id": result.JobID, "path": path}).Info("G-code saved")
	return path, result, nil
}

func (u *Usecase) GenerateToWriter(ctx context.Context, p models.Params, w io.Writer) (*models.Result, error) {
	result, err := u.generator.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write([]byte(result.GCode)); err != nil {
		return nil, fmt.Errorf("failed to write G-code: %w", err)
	}
	return result, nil
}

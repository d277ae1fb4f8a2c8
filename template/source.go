package template

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultName - имя встроенного шаблона серии H2.
const DefaultName = "h2_series_template.gcode"

//go:embed templates/*.gcode
var embedded embed.FS

// ErrTemplateUnavailable возвращается, если шаблон не удалось получить.
var ErrTemplateUnavailable = errors.New("template unavailable")

// Source определяет контракт получения текста шаблона по имени.
type Source interface {
	Load(ctx context.Context, name string) (string, error)
}

// FSSource читает шаблоны из файловой системы fs.FS.
type FSSource struct {
	fsys fs.FS
}

var _ Source = (*FSSource)(nil)

// FS создает источник поверх произвольной fs.FS.
func FS(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Embedded возвращает источник со встроенными шаблонами.
func Embedded() *FSSource {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return FS(sub)
}

// Dir создает источник, читающий шаблоны из каталога на диске.
func Dir(path string) *FSSource {
	return FS(os.DirFS(path))
}

// Load читает шаблон целиком. Ошибки чтения оборачиваются в ErrTemplateUnavailable.
func (s *FSSource) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTemplateUnavailable, name, err)
	}
	return string(data), nil
}

// Fallback пробует источники по порядку и возвращает первый найденный шаблон.
type Fallback []Source

var _ Source = Fallback(nil)

func (f Fallback) Load(ctx context.Context, name string) (string, error) {
	var errs []error
	for _, src := range f {
		text, err := src.Load(ctx, name)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%w: %s: no sources configured", ErrTemplateUnavailable, name)
	}
	return "", errors.Join(errs...)
}

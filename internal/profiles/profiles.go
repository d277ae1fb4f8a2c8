package profiles

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iwtcode/tramGcode/gcode"
	"github.com/iwtcode/tramGcode/gcode/model"
	"github.com/iwtcode/tramGcode/models"
)

// Profile описывает откалиброванную таблицу координат для одной модели.
// Без center используется центр стола встроенной модели.
type Profile struct {
	Points []models.Point `yaml:"points"`
	Offset model.Offset   `yaml:"offset"`
	Center *models.Point  `yaml:"center"`
}

// File - содержимое YAML-файла профилей калибровки.
type File struct {
	Printers map[models.PrinterModel]Profile `yaml:"printers"`
}

// Load читает профили из файла.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML и проверяет, что каждый профиль задает ровно 4 точки.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	for name, p := range f.Printers {
		if _, ok := gcode.GetModelGeometry(name); !ok {
			return nil, fmt.Errorf("profile %q: unknown printer model", name)
		}
		if len(p.Points) != 4 {
			return nil, fmt.Errorf("profile %q: expected 4 points, got %d", name, len(p.Points))
		}
		values := []float64{p.Offset.X, p.Offset.Y}
		for _, pt := range p.Points {
			values = append(values, pt.X, pt.Y)
		}
		if p.Center != nil {
			values = append(values, p.Center.X, p.Center.Y)
		}
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("profile %q: coordinates must be finite numbers", name)
			}
		}
	}
	return &f, nil
}

// Table строит таблицу координат: номинальные точки плюс поправка.
// center используется, если профиль не задает свой центр.
func (p Profile) Table(center models.Point) model.Table {
	var nominal [4]models.Point
	copy(nominal[:], p.Points)
	if p.Center != nil {
		center = *p.Center
	}
	return model.Table{
		Corners: model.Apply(nominal, p.Offset),
		Middle:  center,
	}
}

// Apply возвращает копию реестра с таблицами из профилей.
// Центр для профилей без center берется из встроенной таблицы модели.
func (f *File) Apply(r gcode.Registry) gcode.Registry {
	for name, p := range f.Printers {
		builtin, _ := gcode.GetModelGeometry(name)
		r = r.With(name, p.Table(builtin.Center()))
	}
	return r
}

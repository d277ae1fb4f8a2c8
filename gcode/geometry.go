package gcode

import (
	"fmt"

	"github.com/iwtcode/tramGcode/models"
)

// Geometry - разрешенная таблица координат для одного вызова генерации.
type Geometry struct {
	Points [4]models.Point
	Center models.Point
}

// Lookup возвращает точки и центр стола для модели принтера.
func (r Registry) Lookup(p models.PrinterModel) (Geometry, bool) {
	g, ok := r[p]
	if !ok || g == nil {
		return Geometry{}, false
	}
	return Geometry{Points: g.Points(), Center: g.Center()}, true
}

// ResolveGeometry работает как Lookup, но модель должна быть проверена заранее:
// для неизвестной модели вызывается panic.
func (r Registry) ResolveGeometry(p models.PrinterModel) Geometry {
	geo, ok := r.Lookup(p)
	if !ok {
		panic(fmt.Sprintf("gcode: no geometry for printer model %q", p))
	}
	return geo
}

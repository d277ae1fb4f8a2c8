package printer

import (
	"github.com/iwtcode/tramGcode/gcode/model"
	"github.com/iwtcode/tramGcode/models"
)

// Поправки H2D: индикатор смещен относительно исходных точек G-кода.
// Не точно, но достаточно близко.
const (
	XOffsetH2D = -12.5
	YOffsetH2D = 18
)

// NominalH2D - номинальные точки замера H2D без поправок.
var NominalH2D = [4]models.Point{
	{X: 70, Y: 50},
	{X: 280, Y: 50},
	{X: 285, Y: 300},
	{X: 90, Y: 300},
}

// ModelH2DGeometry предоставляет таблицу координат для H2D.
type ModelH2DGeometry struct{}

var _ model.GeometryProvider = ModelH2DGeometry{}

func (ModelH2DGeometry) Points() [4]models.Point {
	return model.Apply(NominalH2D, model.Offset{X: XOffsetH2D, Y: YOffsetH2D})
}

// Center смещен по X вправо и по Y ближе к передней части стола.
func (ModelH2DGeometry) Center() models.Point {
	return models.Point{X: 175 + 11, Y: 160 - 10}
}

package printer

import (
	"github.com/iwtcode/tramGcode/gcode/model"
	"github.com/iwtcode/tramGcode/models"
)

// YOffsetH2S - поправка по Y для H2S, по X поправка не нужна.
const YOffsetH2S = 18

// NominalH2S - номинальные точки замера H2S без поправок.
var NominalH2S = [4]models.Point{
	{X: 70, Y: 50},
	{X: 280, Y: 50},
	{X: 270, Y: 300},
	{X: 70, Y: 300},
}

// ModelH2SGeometry предоставляет таблицу координат для H2S.
type ModelH2SGeometry struct{}

var _ model.GeometryProvider = ModelH2SGeometry{}

func (ModelH2SGeometry) Points() [4]models.Point {
	return model.Apply(NominalH2S, model.Offset{Y: YOffsetH2S})
}

func (ModelH2SGeometry) Center() models.Point {
	return models.Point{X: 170, Y: 160 - 10}
}

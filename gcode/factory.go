package gcode

import (
	"github.com/iwtcode/tramGcode/gcode/model"
	"github.com/iwtcode/tramGcode/gcode/printer"
	"github.com/iwtcode/tramGcode/models"
)

// GetModelGeometry выбирает встроенную таблицу координат для модели принтера.
// Для неизвестной модели возвращает false.
func GetModelGeometry(p models.PrinterModel) (model.GeometryProvider, bool) {
	switch p {
	case models.PrinterH2D:
		return printer.ModelH2DGeometry{}, true
	case models.PrinterH2S:
		return printer.ModelH2SGeometry{}, true
	case models.PrinterH2C:
		return printer.ModelH2CGeometry{}, true
	}
	return nil, false
}

// Registry сопоставляет модели принтеров с таблицами координат.
// После создания Registry только читается.
type Registry map[models.PrinterModel]model.GeometryProvider

// DefaultRegistry возвращает реестр со встроенными таблицами всех поддерживаемых моделей.
func DefaultRegistry() Registry {
	r := make(Registry, len(models.Printers()))
	for _, p := range models.Printers() {
		g, _ := GetModelGeometry(p)
		r[p] = g
	}
	return r
}

// With возвращает копию реестра, в которой таблица для p заменена на g.
func (r Registry) With(p models.PrinterModel, g model.GeometryProvider) Registry {
	out := make(Registry, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[p] = g
	return out
}

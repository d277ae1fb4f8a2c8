package model

import "github.com/iwtcode/tramGcode/models"

// GeometryProvider определяет интерфейс таблицы координат для конкретной модели принтера.
type GeometryProvider interface {
	// Points возвращает четыре точки замера в порядке обхода.
	Points() [4]models.Point
	// Center возвращает координаты центра стола.
	Center() models.Point
}

// Table - готовая таблица координат, например загруженная из профиля калибровки.
type Table struct {
	Corners [4]models.Point
	Middle  models.Point
}

// Убедимся, что Table удовлетворяет интерфейсу GeometryProvider.
var _ GeometryProvider = Table{}

func (t Table) Points() [4]models.Point { return t.Corners }
func (t Table) Center() models.Point    { return t.Middle }

// Offset - поправка по осям, учитывающая расстояние от сопла до щупа индикатора.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Apply строит четыре именованные точки из номинальной таблицы и поправки.
func Apply(nominal [4]models.Point, off Offset) [4]models.Point {
	names := models.PointNames()
	var out [4]models.Point
	for i, p := range nominal {
		out[i] = models.Point{Name: names[i], X: p.X + off.X, Y: p.Y + off.Y}
	}
	return out
}

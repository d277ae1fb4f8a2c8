package printer

// ModelH2CGeometry использует стол и кинематику H2D.
// В данный момент он просто встраивает H2D для наследования его методов.
type ModelH2CGeometry struct {
	ModelH2DGeometry
}

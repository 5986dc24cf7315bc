package softbody

// Mode selects what a click in the scene creates.
type Mode int

const (
	ModeSoftBody Mode = iota
	ModeDot
	ModePolygon
)

func (m Mode) String() string {
	switch m {
	case ModeSoftBody:
		return "soft body"
	case ModeDot:
		return "dot"
	case ModePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Scene holds everything simulated in a frame: one soft body, free dots and the polygons
// they collide with.
type Scene struct {
	width, height float64
	params        Params

	body     *SoftBody
	dots     []*Dot
	polygons []*Polygon
	drawing  *IncompletePolygon

	stamp uint
}

// NewScene creates a width x height scene with a floor and a soft body in the middle.
func NewScene(width, height float64, params Params) *Scene {
	return &Scene{
		width:    width,
		height:   height,
		params:   params,
		body:     NewSoftBody(Vector{width / 2, height / 2}, params),
		polygons: []*Polygon{NewFloor(width, height)},
		drawing:  NewIncompletePolygon(params.CloseDistance),
	}
}

func (scene *Scene) Width() float64 {
	return scene.width
}

func (scene *Scene) Height() float64 {
	return scene.height
}

func (scene *Scene) Params() Params {
	return scene.params
}

// Stamp counts the ticks stepped so far.
func (scene *Scene) Stamp() uint {
	return scene.stamp
}

func (scene *Scene) Body() *SoftBody {
	return scene.body
}

func (scene *Scene) Dots() []*Dot {
	return scene.dots
}

func (scene *Scene) Polygons() []*Polygon {
	return scene.polygons
}

func (scene *Scene) Drawing() *IncompletePolygon {
	return scene.drawing
}

func (scene *Scene) AddPolygon(poly *Polygon) {
	scene.polygons = append(scene.polygons, poly)
}

// Spawn handles a click at p with the given tool. It reports whether the click changed the scene.
func (scene *Scene) Spawn(mode Mode, p Vector) bool {
	switch mode {
	case ModeSoftBody:
		scene.body = NewSoftBody(p, scene.params)
		return true
	case ModeDot:
		scene.dots = append(scene.dots, NewDot(p, scene.params.Radius))
		return true
	case ModePolygon:
		poly, accepted := scene.drawing.AddPoint(p, scene.polygons, scene.body)
		if poly != nil {
			scene.AddPolygon(poly)
		}
		return accepted
	default:
		return false
	}
}

// CancelDrawing throws away the polygon being drawn.
func (scene *Scene) CancelDrawing() {
	scene.drawing.Reset()
}

// Reset removes every polygon, the floor included, the free dots and the polygon being drawn.
func (scene *Scene) Reset() {
	scene.drawing.Reset()
	scene.polygons = nil
	scene.dots = nil
}

func (scene *Scene) Step() {
	scene.stamp++

	if scene.body != nil {
		scene.body.Step(scene.polygons)
	}

	live := scene.dots[:0]
	for _, dot := range scene.dots {
		dot.Update(scene.params)
		for _, poly := range scene.polygons {
			HandlePointPolygonCollision(dot, poly)
		}
		if !dot.IsOutOfBounds(scene.width, scene.height) {
			live = append(live, dot)
		}
	}
	for i := len(live); i < len(scene.dots); i++ {
		scene.dots[i] = nil
	}
	scene.dots = live
}

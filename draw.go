package softbody

//Draw flags
const (
	DRAW_DOTS     = 1 << 0
	DRAW_SPRINGS  = 1 << 1
	DRAW_POLYGONS = 1 << 2
	DRAW_DRAWING  = 1 << 3
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

var (
	Yellow = FColor{R: 1, G: 1, A: 1}
	Blue   = FColor{R: 0.39, G: 0.29, B: 1, A: 1}
	White  = FColor{R: 1, G: 1, B: 1, A: 1}
	Grey   = FColor{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// Drawer renders the read-only state DrawScene hands it.
type Drawer interface {
	DrawCircle(pos Vector, radius float64, fill FColor)
	DrawSegment(a, b Vector, fill FColor)

	Flags() int
	DotColor() FColor
	SpringColor(onBorder bool) FColor
	PolygonColor() FColor
	DrawingColor() FColor
}

func DrawPolygon(poly *Polygon, options Drawer) {
	color := options.PolygonColor()
	verts := poly.Vertices()
	prev := verts[len(verts)-1]
	for _, v := range verts {
		options.DrawSegment(prev, v, color)
		prev = v
	}
}

func DrawSoftBody(body *SoftBody, options Drawer) {
	flags := options.Flags()

	if flags&DRAW_SPRINGS != 0 {
		for _, spring := range body.springs {
			a, b := spring.Endpoints(body.dots)
			options.DrawSegment(a, b, options.SpringColor(spring.OnBorder))
		}
	}

	if flags&DRAW_DOTS != 0 {
		color := options.DotColor()
		for i := range body.dots {
			options.DrawCircle(body.dots[i].pos, body.dots[i].radius, color)
		}
	}
}

func DrawScene(scene *Scene, options Drawer) {
	flags := options.Flags()

	if flags&DRAW_POLYGONS != 0 {
		for _, poly := range scene.polygons {
			DrawPolygon(poly, options)
		}
	}

	if flags&DRAW_DRAWING != 0 {
		points := scene.drawing.points
		color := options.DrawingColor()
		for i := 1; i < len(points); i++ {
			options.DrawSegment(points[i-1], points[i], color)
		}
	}

	if scene.body != nil {
		DrawSoftBody(scene.body, options)
	}

	if flags&DRAW_DOTS != 0 {
		color := options.DotColor()
		for _, dot := range scene.dots {
			options.DrawCircle(dot.pos, dot.radius, color)
		}
	}
}

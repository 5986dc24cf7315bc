package softbody

import (
	"log"
	"math"
)

// Subdivide picks column and row counts for a width x height rectangle so the cells are
// within the aspect tolerance of a square and no wider or taller than params.MeshCellSize.
// Starting from a single cell it splits whichever dimension has the longer cell span.
func Subdivide(width, height float64, params Params) (cols, rows int) {
	assert(width > 0 && height > 0, "Mesh rectangle must have a positive size")

	cols, rows = 1, 1
	for i := 0; i < MeshMaxIterations; i++ {
		cellW := width / float64(cols)
		cellH := height / float64(rows)
		if math.Abs(cellW/cellH-1) <= params.AspectTolerance && math.Max(cellW, cellH) <= params.MeshCellSize {
			return cols, rows
		}

		if cellW > cellH {
			cols++
		} else {
			rows++
		}
	}

	log.Printf("mesh subdivision of %.1fx%.1f did not converge, using %dx%d cells", width, height, cols, rows)
	return cols, rows
}

// NewMesh fills the rectangle with a lattice of dots and connects every pair of dots that
// are one horizontal, vertical or diagonal step apart.
func NewMesh(topLeft, bottomRight Vector, params Params) ([]Dot, []Spring) {
	width := bottomRight.X - topLeft.X
	height := bottomRight.Y - topLeft.Y
	cols, rows := Subdivide(width, height, params)

	stepX := width / float64(cols)
	stepY := height / float64(rows)
	diagonal := math.Hypot(stepX, stepY)

	dots := make([]Dot, 0, (cols+1)*(rows+1))
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			pos := Vector{topLeft.X + float64(i)*stepX, topLeft.Y + float64(j)*stepY}
			dots = append(dots, *NewDot(pos, params.Radius))
		}
	}

	var springs []Spring
	for i := range dots {
		for j := i + 1; j < len(dots); j++ {
			dist := dots[i].pos.Distance(dots[j].pos)
			if !CloseToEqual(dist, stepX) && !CloseToEqual(dist, stepY) && !CloseToEqual(dist, diagonal) {
				continue
			}

			spring := NewSpring(dots, i, j, params.Stiffness, params.Damping)
			if onBorder(dots[i].pos, dots[j].pos, topLeft, bottomRight) {
				spring.OnBorder = true
				spring.Stiffness += params.BorderStiffnessBonus
			}
			springs = append(springs, spring)
		}
	}

	return dots, springs
}

// onBorder reports whether a and b lie on the same edge of the rectangle.
func onBorder(a, b, topLeft, bottomRight Vector) bool {
	sameX := func(x float64) bool { return CloseToEqual(a.X, x) && CloseToEqual(b.X, x) }
	sameY := func(y float64) bool { return CloseToEqual(a.Y, y) && CloseToEqual(b.Y, y) }
	return sameX(topLeft.X) || sameX(bottomRight.X) || sameY(topLeft.Y) || sameY(bottomRight.Y)
}

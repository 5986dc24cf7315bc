package softbody

import (
	"math"
	"testing"
)

func TestSubdivide(t *testing.T) {
	params := DefaultParams()
	for _, test := range []struct {
		w, h       float64
		cols, rows int
	}{
		{160, 120, 4, 3},
		{40, 40, 1, 1},
		{80, 80, 2, 2},
	} {
		cols, rows := Subdivide(test.w, test.h, params)
		if cols != test.cols || rows != test.rows {
			t.Errorf("%vx%v: expected %dx%d got %dx%d", test.w, test.h, test.cols, test.rows, cols, rows)
		}
	}
}

func TestSubdivideAspect(t *testing.T) {
	params := DefaultParams()
	for _, size := range [][2]float64{{160, 120}, {300, 70}, {55, 210}, {123, 45}} {
		cols, rows := Subdivide(size[0], size[1], params)
		cellW := size[0] / float64(cols)
		cellH := size[1] / float64(rows)
		if math.Abs(cellW/cellH-1) > params.AspectTolerance {
			t.Errorf("%v: cell %vx%v is not square enough", size, cellW, cellH)
		}
	}
}

func TestSubdivideTerminates(t *testing.T) {
	cols, rows := Subdivide(1e9, 1e-3, DefaultParams())
	if cols+rows-2 > MeshMaxIterations {
		t.Errorf("Expected at most %d refinements, got %dx%d", MeshMaxIterations, cols, rows)
	}
}

func TestNewMeshConnectivity(t *testing.T) {
	params := DefaultParams()
	body := NewSoftBodyForRect(Vector{0, 0}, Vector{160, 120}, params)

	// 4x3 cells give a 5x4 lattice.
	if body.DotCount() != 20 {
		t.Fatalf("Expected 20 dots, got %d", body.DotCount())
	}

	const cols = 5
	corner := 0
	edge := 2
	interior := cols + 1
	if n := len(body.Neighbors(corner)); n != 3 {
		t.Errorf("Expected corner to have 3 neighbors, got %d", n)
	}
	if n := len(body.Neighbors(edge)); n != 5 {
		t.Errorf("Expected edge dot to have 5 neighbors, got %d", n)
	}
	if n := len(body.Neighbors(interior)); n != 8 {
		t.Errorf("Expected interior dot to have 8 neighbors, got %d", n)
	}
	if n := len(body.Neighbors(body.DotCount() - 1)); n != 3 {
		t.Errorf("Expected last corner to have 3 neighbors, got %d", n)
	}

	// 4*4 horizontal + 5*3 vertical + 2*4*3 diagonal
	if body.SpringCount() != 55 {
		t.Errorf("Expected 55 springs, got %d", body.SpringCount())
	}
}

func TestNewMeshBorderSprings(t *testing.T) {
	params := DefaultParams()
	body := NewSoftBodyForRect(Vector{0, 0}, Vector{160, 120}, params)

	border := 0
	for i := 0; i < body.SpringCount(); i++ {
		spring := body.Spring(i)
		a, b := body.Dot(spring.Index1).Position(), body.Dot(spring.Index2).Position()
		if spring.OnBorder {
			border++
			if a.X != b.X && a.Y != b.Y {
				t.Errorf("Border spring %v-%v is not axis aligned", a, b)
			}
			if spring.Stiffness != params.Stiffness+params.BorderStiffnessBonus {
				t.Errorf("Expected border stiffness bonus, got %v", spring.Stiffness)
			}
		} else if spring.Stiffness != params.Stiffness {
			t.Errorf("Expected plain stiffness, got %v", spring.Stiffness)
		}
		if math.Abs(spring.RestLength-a.Distance(b)) > 1e-9 {
			t.Errorf("Rest length %v does not match distance %v", spring.RestLength, a.Distance(b))
		}
	}

	// The outline of a 4x3 mesh.
	if border != 14 {
		t.Errorf("Expected 14 border springs, got %d", border)
	}
}

func TestNewSoftBodyCentered(t *testing.T) {
	params := DefaultParams()
	body := NewSoftBody(Vector{400, 300}, params)
	c := body.Center()
	if math.Abs(c.X-400) > 1e-9 || math.Abs(c.Y-300) > 1e-9 {
		t.Errorf("Expected body centred on 400,300 got %v", c)
	}
}

package softbody

// SoftBody owns a lattice of dots and the springs between them. Springs refer to dots by
// index so the dot slice can be copied and iterated freely.
type SoftBody struct {
	dots    []Dot
	springs []Spring
	params  Params
}

// NewSoftBody builds a MeshWidth x MeshHeight body centred at center.
func NewSoftBody(center Vector, params Params) *SoftBody {
	half := Vector{params.MeshWidth / 2, params.MeshHeight / 2}
	return NewSoftBodyForRect(center.Sub(half), center.Add(half), params)
}

func NewSoftBodyForRect(topLeft, bottomRight Vector, params Params) *SoftBody {
	dots, springs := NewMesh(topLeft, bottomRight, params)
	return &SoftBody{
		dots:    dots,
		springs: springs,
		params:  params,
	}
}

func (body *SoftBody) Params() Params {
	return body.params
}

func (body *SoftBody) DotCount() int {
	return len(body.dots)
}

func (body *SoftBody) Dot(i int) *Dot {
	return &body.dots[i]
}

func (body *SoftBody) EachDot(f func(i int, dot *Dot)) {
	for i := range body.dots {
		f(i, &body.dots[i])
	}
}

func (body *SoftBody) SpringCount() int {
	return len(body.springs)
}

func (body *SoftBody) Spring(i int) Spring {
	return body.springs[i]
}

// Segments returns the current line of every spring.
func (body *SoftBody) Segments() []Segment {
	segments := make([]Segment, len(body.springs))
	for i := range body.springs {
		segments[i] = NewSegment(body.springs[i].Endpoints(body.dots))
	}
	return segments
}

// Neighbors lists the indices of dots sharing a spring with dot i.
func (body *SoftBody) Neighbors(i int) []int {
	var neighbors []int
	for _, spring := range body.springs {
		switch i {
		case spring.Index1:
			neighbors = append(neighbors, spring.Index2)
		case spring.Index2:
			neighbors = append(neighbors, spring.Index1)
		}
	}
	return neighbors
}

func (body *SoftBody) Center() Vector {
	var sum Vector
	for _, dot := range body.dots {
		sum = sum.Add(dot.pos)
	}
	return sum.Mult(1 / float64(len(body.dots)))
}

// SpringDeltas computes the acceleration every spring contributes to its endpoints without
// touching the body. Springs whose endpoints coincide have no axis and contribute nothing.
func (body *SoftBody) SpringDeltas() []Vector {
	deltas := make([]Vector, len(body.dots))
	for i := range body.springs {
		spring := &body.springs[i]
		a := body.dots[spring.Index1]
		b := body.dots[spring.Index2]
		if a.pos.Equal(b.pos) {
			continue
		}

		da, db := sampleSpring(spring, a, b, body.params)
		deltas[spring.Index1] = deltas[spring.Index1].Add(da)
		deltas[spring.Index2] = deltas[spring.Index2].Add(db)
	}
	return deltas
}

// ApplyDeltas feeds deltas into the dots and integrates each of them once.
func (body *SoftBody) ApplyDeltas(deltas []Vector) {
	assert(len(deltas) == len(body.dots), "Delta count does not match dot count")
	for i := range body.dots {
		body.dots[i].AddAcceleration(deltas[i])
		body.dots[i].Update(body.params)
	}
}

// Step advances the body one tick and resolves its collisions against polygons.
func (body *SoftBody) Step(polygons []*Polygon) {
	body.ApplyDeltas(body.SpringDeltas())

	threshold := body.params.CollisionThreshold()
	for _, spring := range body.springs {
		HandlePointPointCollision(body.dots, spring.Index1, spring.Index2, threshold)
	}

	for _, poly := range polygons {
		body.HandleCollision(poly)
	}
}

func (body *SoftBody) HandleCollision(poly *Polygon) {
	for i := range body.dots {
		HandlePointPolygonCollision(&body.dots[i], poly)
	}
}

package softbody

type SpringForceFunc func(spring *Spring, dist float64) float64

// Spring is a damped spring between two dots of a SoftBody, referenced by index.
type Spring struct {
	Index1, Index2                 int
	RestLength, Stiffness, Damping float64
	SpringForceFunc                SpringForceFunc

	// OnBorder marks springs running along the outer edge of the mesh.
	OnBorder bool
}

// NewSpring rests the spring at the current distance between dots[i1] and dots[i2].
func NewSpring(dots []Dot, i1, i2 int, stiffness, damping float64) Spring {
	assert(i1 != i2, "Spring endpoints must differ")
	assert(i1 >= 0 && i1 < len(dots), "Spring index out of range: ", i1)
	assert(i2 >= 0 && i2 < len(dots), "Spring index out of range: ", i2)

	restLength := dots[i1].pos.Distance(dots[i2].pos)
	assert(restLength > 0, "Spring endpoints are coincident")

	return Spring{
		Index1:          i1,
		Index2:          i2,
		RestLength:      restLength,
		Stiffness:       stiffness,
		Damping:         damping,
		SpringForceFunc: DefaultSpringForce,
	}
}

// Force returns the combined Hookean and damping force along p1-p2.
// Endpoint 1 receives the negated force and endpoint 2 the force itself.
func (spring *Spring) Force(p1, p2, v1, v2 Vector) Vector {
	delta := p1.Sub(p2)
	dist := delta.Length()
	if dist == 0 {
		return Vector{}
	}
	n := delta.Mult(1 / dist)

	forceFunc := spring.SpringForceFunc
	if forceFunc == nil {
		forceFunc = DefaultSpringForce
	}
	hooke := forceFunc(spring, dist)
	damping := n.Dot(v1.Sub(v2)) * spring.Damping
	return n.Mult(hooke + damping)
}

// Accelerations splits Force between the two endpoints. Dots have unit mass.
func (spring *Spring) Accelerations(p1, p2, v1, v2 Vector) (a1, a2 Vector) {
	f := spring.Force(p1, p2, v1, v2)
	return f.Neg(), f
}

func (spring *Spring) Endpoints(dots []Dot) (Vector, Vector) {
	return dots[spring.Index1].pos, dots[spring.Index2].pos
}

func DefaultSpringForce(spring *Spring, dist float64) float64 {
	return (dist - spring.RestLength) * spring.Stiffness
}

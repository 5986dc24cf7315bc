package softbody

import "math"

// Dot is a point mass with a collision radius.
type Dot struct {
	pos, vel, prevPos Vector
	acceleration      Vector
	radius            float64

	// Frozen dots ignore integration and pushes.
	Frozen bool
}

func NewDot(pos Vector, radius float64) *Dot {
	assert(radius > 0, "Dot radius must be positive")
	return &Dot{
		pos:     pos,
		prevPos: pos,
		radius:  radius,
	}
}

func (dot *Dot) Position() Vector {
	return dot.pos
}

func (dot *Dot) SetPosition(pos Vector) {
	dot.pos = pos
}

func (dot *Dot) Velocity() Vector {
	return dot.vel
}

func (dot *Dot) SetVelocity(vel Vector) {
	dot.vel = vel
}

func (dot *Dot) PrevPosition() Vector {
	return dot.prevPos
}

func (dot *Dot) Acceleration() Vector {
	return dot.acceleration
}

func (dot *Dot) Radius() float64 {
	return dot.radius
}

func (dot *Dot) AddAcceleration(a Vector) {
	dot.acceleration = dot.acceleration.Add(a)
}

// Update integrates one tick: gravity joins the accumulated acceleration, velocity is
// integrated and clamped, then position. The accumulator is always cleared.
func (dot *Dot) Update(params Params) {
	dot.acceleration = dot.acceleration.Add(params.Gravity)
	dot.prevPos = dot.pos

	if !dot.Frozen {
		dot.vel = dot.vel.Add(dot.acceleration.Mult(params.DeltaT))
		if dot.vel.LengthSq() > params.MaxSpeed*params.MaxSpeed {
			dot.vel = dot.vel.Normalize().Mult(params.ResetSpeed)
		}
		dot.pos = dot.pos.Add(dot.vel.Mult(params.DeltaT))
	}

	dot.acceleration = Vector{}
}

// Push moves the dot immediately and biases the next integration along v.
func (dot *Dot) Push(v Vector) {
	if dot.Frozen {
		return
	}
	dot.acceleration = dot.acceleration.Add(v.Mult(PushAccelerationScale))
	dot.pos = dot.pos.Add(v)
}

// UpdateFromCorrectedPosition moves the dot by v and derives velocity from the
// displacement since the last snapshot of prevPos.
func (dot *Dot) UpdateFromCorrectedPosition(v Vector, dt float64) {
	if dot.Frozen {
		return
	}
	dot.pos = dot.pos.Add(v)
	dot.vel = dot.pos.Sub(dot.prevPos).Mult(1 / dt)
}

// IsOutOfBounds reports whether the dot wandered more than twice the viewport size from the origin.
func (dot *Dot) IsOutOfBounds(width, height float64) bool {
	return math.Abs(dot.pos.X) > 2*width || math.Abs(dot.pos.Y) > 2*height
}

func (dot *Dot) isInBoundingBox(poly *Polygon) bool {
	return poly.BB().IntersectsCircle(dot.pos, dot.radius)
}

func (dot *Dot) isCenterInside(poly *Polygon) bool {
	return poly.ContainsPoint(dot.pos)
}

// PushVector calculates the displacement that moves the dot out of poly.
// ok is false when the dot does not collide with poly.
func (dot *Dot) PushVector(poly *Polygon) (push Vector, ok bool) {
	if !dot.isInBoundingBox(poly) {
		return Vector{}, false
	}

	closest, edge, found := poly.closestEdge(dot.pos)
	if !found {
		return Vector{}, false
	}
	if closest.IsZero() {
		// Center exactly on the edge.
		return poly.OutwardNormal(edge).Mult(dot.radius), true
	}
	n := closest.Normalize()

	if dot.isCenterInside(poly) {
		// Center to the boundary, then one more radius outward.
		return closest.Add(n.Mult(dot.radius)), true
	}

	if closest.Length() < dot.radius {
		return closest.Sub(n.Mult(dot.radius)), true
	}

	return Vector{}, false
}

func (dot *Dot) HandleCollision(poly *Polygon) bool {
	push, ok := dot.PushVector(poly)
	if ok {
		dot.Push(push)
	}
	return ok
}


package softbody

// Stage weights of the pairwise sampler. The first sample is taken at the current state,
// the other two at half steps.
var rk4Weights = [3]float64{1, 0.2, 0.2}

// sampleSpring runs the 3 stage sampler over copies of a spring's endpoints and returns
// the acceleration delta for each. The copies may be corrected when a half step sample
// lands two dots inside each other; the dots in the body are never touched.
func sampleSpring(spring *Spring, a, b Dot, params Params) (da, db Vector) {
	dt := params.DeltaT
	threshold := params.CollisionThreshold()

	a.prevPos = a.pos
	b.prevPos = b.pos

	f1a, f1b := spring.Accelerations(a.pos, b.pos, a.vel, b.vel)
	k1a, k1b := f1a.Mult(dt), f1b.Mult(dt)

	a2, b2 := halfStep(a, b, k1a, k1b, threshold, dt)
	f2a, f2b := spring.Accelerations(a2.pos, b2.pos, a2.vel, b2.vel)
	k2a, k2b := f2a.Mult(dt), f2b.Mult(dt)

	a3, b3 := halfStep(a, b, k2a, k2b, threshold, dt)
	f3a, f3b := spring.Accelerations(a3.pos, b3.pos, a3.vel, b3.vel)
	k3a, k3b := f3a.Mult(dt), f3b.Mult(dt)

	da = k1a.Mult(rk4Weights[0]).Add(k2a.Mult(rk4Weights[1])).Add(k3a.Mult(rk4Weights[2]))
	db = k1b.Mult(rk4Weights[0]).Add(k2b.Mult(rk4Weights[1])).Add(k3b.Mult(rk4Weights[2]))
	return da, db
}

// halfStep advances copies of a and b by half of the slopes ka and kb, separating them
// if that makes them overlap.
func halfStep(a, b Dot, ka, kb Vector, threshold, dt float64) (Dot, Dot) {
	ka = ka.Mult(0.5)
	kb = kb.Mult(0.5)

	a.pos = a.pos.Add(ka.Mult(dt))
	a.vel = a.vel.Add(ka)
	b.pos = b.pos.Add(kb.Mult(dt))
	b.vel = b.vel.Add(kb)

	if push, ok := separation(a.pos, b.pos, threshold, a.radius); ok {
		a.UpdateFromCorrectedPosition(push, dt)
		b.UpdateFromCorrectedPosition(push.Neg(), dt)
	}
	return a, b
}

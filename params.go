package softbody

const (
	Gravity   = 9.8
	DeltaT    = 0.25
	Radius    = 10.0
	Damping   = 0.8
	Stiffness = 10.0

	BorderStiffnessBonus = 2.0

	// Velocities above MaxSpeed are renormalized to ResetSpeed.
	MaxSpeed   = 200.0
	ResetSpeed = 10.0

	// Push vectors from collisions are also fed into the next tick's acceleration.
	PushAccelerationScale = 10.0

	CollisionThresholdScale = 1.0
	AspectTolerance         = 0.1
	MeshCellSize            = 40.0
	MeshWidth               = 160.0
	MeshHeight              = 120.0
	MeshMaxIterations       = 1000

	CloseDistance = 50.0
)

// Params holds the tuning of a simulation. The zero value is not usable, start from DefaultParams.
type Params struct {
	Gravity Vector
	DeltaT  float64

	Radius    float64
	Stiffness float64
	Damping   float64

	BorderStiffnessBonus float64

	MaxSpeed   float64
	ResetSpeed float64

	CollisionThresholdScale float64

	AspectTolerance float64
	MeshCellSize    float64
	MeshWidth       float64
	MeshHeight      float64

	CloseDistance float64
}

func DefaultParams() Params {
	return Params{
		Gravity:                 Vector{0, Gravity},
		DeltaT:                  DeltaT,
		Radius:                  Radius,
		Stiffness:               Stiffness,
		Damping:                 Damping,
		BorderStiffnessBonus:    BorderStiffnessBonus,
		MaxSpeed:                MaxSpeed,
		ResetSpeed:              ResetSpeed,
		CollisionThresholdScale: CollisionThresholdScale,
		AspectTolerance:         AspectTolerance,
		MeshCellSize:            MeshCellSize,
		MeshWidth:               MeshWidth,
		MeshHeight:              MeshHeight,
		CloseDistance:           CloseDistance,
	}
}

func (p Params) CollisionThreshold() float64 {
	return p.Radius * p.CollisionThresholdScale
}

package vehicle

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// WheelConfig describes one wheel attachment on the hull. All vectors are in
// hull local space and fixed for the life of the rig.
type WheelConfig struct {
	// ConnectionPointLocal is the suspension anchor, offset from hull origin.
	ConnectionPointLocal rl.Vector3
	// DirectionLocal is the suspension raycast direction (usually straight down).
	DirectionLocal rl.Vector3
	// AxleLocal is the wheel's rotation axis at zero steering.
	AxleLocal rl.Vector3

	SuspensionRestLength float32
	Radius               float32
	Stiffness            float32
	// Damping is asymmetric: DampingCompression applies while the suspension
	// shortens, DampingRelaxation while it extends.
	DampingCompression float32
	DampingRelaxation  float32
	// RollInfluence raises the lateral force application point toward the
	// hull: 0 = at the contact patch, 1 = at the attachment point.
	RollInfluence       float32
	FrictionCoefficient float32

	// Role tags replace positional index conventions.
	IsFrontWheel bool
	IsDriveWheel bool
}

// Wheel is the per-wheel runtime state mutated every fixed tick.
type Wheel struct {
	WheelConfig

	// SuspensionLength is the current raycast length minus the wheel radius,
	// clamped to [0, SuspensionRestLength]. Equals the rest length while airborne.
	SuspensionLength float32
	IsGrounded       bool

	// SteeringAngle in radians, only driven for front wheels.
	SteeringAngle float32
	EngineForce   float32
	BrakeForce    float32

	// SkidInfo is a smoothed lateral-grip metric in [0,1], 1 = full grip.
	// Consumed by the effects layer only.
	SkidInfo float32

	// ContactPosition/ContactNormal are world space and only valid while
	// IsGrounded is true; they are left stale on airborne ticks.
	ContactPosition rl.Vector3
	ContactNormal   rl.Vector3

	prevCompression float32
}

func newWheel(cfg WheelConfig) *Wheel {
	return &Wheel{
		WheelConfig:      cfg,
		SuspensionLength: cfg.SuspensionRestLength,
		SkidInfo:         1.0,
	}
}

// Compression returns the fractional shortening of the suspension, in [0,1].
func (w *Wheel) Compression() float32 {
	if w.SuspensionRestLength <= 0 {
		return 0
	}
	return 1 - w.SuspensionLength/w.SuspensionRestLength
}

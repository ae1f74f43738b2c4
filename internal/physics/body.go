package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hull is a dynamic rigid body integrated with explicit Euler steps. It
// implements vehicle.Body: the rig applies forces through ApplyForceAtPoint
// and the world integrates them after every tick.
type Hull struct {
	// LinearDamping/AngularDamping are per-frame retention factors at 60 Hz,
	// rescaled by dt during integration (1 = no damping).
	LinearDamping  float32
	AngularDamping float32

	mass       float32
	invInertia float32

	position        rl.Vector3
	orientation     rl.Quaternion
	velocity        rl.Vector3
	angularVelocity rl.Vector3 // radians/sec, world space

	force  rl.Vector3
	torque rl.Vector3
}

// NewHull creates a hull of the given mass with the moment of inertia of a
// solid box with the given full extents.
func NewHull(mass float32, extents rl.Vector3, position rl.Vector3) *Hull {
	if mass <= 0 {
		mass = 1
	}
	// Scalar approximation of the box inertia tensor; good enough for a hull
	// that mostly yaws and pitches a few degrees.
	inertia := mass * (extents.X*extents.X + extents.Y*extents.Y + extents.Z*extents.Z) / 12
	if inertia <= 0 {
		inertia = mass
	}
	return &Hull{
		LinearDamping:  0.999,
		AngularDamping: 0.95,
		mass:           mass,
		invInertia:     1 / inertia,
		position:       position,
		orientation:    rl.QuaternionIdentity(),
	}
}

func (h *Hull) Mass() float32 {
	return h.mass
}

func (h *Hull) Position() rl.Vector3 {
	return h.position
}

func (h *Hull) Rotation() rl.Quaternion {
	return h.orientation
}

func (h *Hull) LinearVelocity() rl.Vector3 {
	return h.velocity
}

func (h *Hull) AngularVelocity() rl.Vector3 {
	return h.angularVelocity
}

// SetOrientation replaces the hull orientation; used for scene setup only.
func (h *Hull) SetOrientation(q rl.Quaternion) {
	h.orientation = rl.QuaternionNormalize(q)
}

// SetLinearVelocity replaces the hull velocity; used for scene setup only.
func (h *Hull) SetLinearVelocity(v rl.Vector3) {
	h.velocity = v
}

// ApplyForceAtPoint accumulates a world-space force acting at a world-space
// point. Off-center application also accumulates torque.
func (h *Hull) ApplyForceAtPoint(force, point rl.Vector3) {
	h.force = rl.Vector3Add(h.force, force)
	arm := rl.Vector3Subtract(point, h.position)
	h.torque = rl.Vector3Add(h.torque, rl.Vector3CrossProduct(arm, force))
}

// Step integrates accumulated forces plus gravity over dt and clears the
// accumulators.
func (h *Hull) Step(dt float32, gravity rl.Vector3) {
	if dt <= 0 {
		h.force = rl.Vector3{}
		h.torque = rl.Vector3{}
		return
	}

	accel := rl.Vector3Add(gravity, rl.Vector3Scale(h.force, 1/h.mass))
	h.velocity = rl.Vector3Add(h.velocity, rl.Vector3Scale(accel, dt))
	h.velocity = rl.Vector3Scale(h.velocity, dampingFactor(h.LinearDamping, dt))
	h.position = rl.Vector3Add(h.position, rl.Vector3Scale(h.velocity, dt))

	h.angularVelocity = rl.Vector3Add(h.angularVelocity, rl.Vector3Scale(h.torque, h.invInertia*dt))
	h.angularVelocity = rl.Vector3Scale(h.angularVelocity, dampingFactor(h.AngularDamping, dt))

	spin := rl.Vector3Length(h.angularVelocity)
	if spin > 0.000001 {
		axis := rl.Vector3Scale(h.angularVelocity, 1/spin)
		dq := rl.QuaternionFromAxisAngle(axis, spin*dt)
		h.orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(dq, h.orientation))
	}

	h.force = rl.Vector3{}
	h.torque = rl.Vector3{}
}

// dampingFactor converts a per-frame retention factor at 60 Hz into one for
// an arbitrary dt, so damping stays framerate independent.
func dampingFactor(retention, dt float32) float32 {
	f := 1 - (1-retention)*dt*60
	if f < 0 {
		return 0
	}
	return f
}

package vehicle

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Lateral slip speed (m/s) treated as a complete loss of grip.
	skidFullSlipSpeed = 4.0
	// Response rate (1/s) of the skid window toward the instantaneous sample.
	skidResponse = 8.0
	// Fraction of the available grip spent per m/s of lateral slip.
	corneringResponse = 0.6
	// Below this forward speed the brake holds the wheel instead of reversing it.
	brakeStopSpeed = 0.05
)

// stepSuspension runs one wheel for one fixed tick: raycast along the
// suspension, spring+damper force from the compression state, then
// longitudinal and lateral tire forces scaled by the instantaneous normal
// load. All forces go to the hull; wheels carry no rigid body of their own.
func (r *Rig) stepSuspension(w *Wheel, dt float32) {
	rot := r.hull.Rotation()
	origin := rl.Vector3Add(r.hull.Position(), rl.Vector3RotateByQuaternion(w.ConnectionPointLocal, rot))
	dir := rl.Vector3Normalize(rl.Vector3RotateByQuaternion(w.DirectionLocal, rot))
	rayLength := w.SuspensionRestLength + w.Radius

	hit, ok := r.caster.Cast(origin, dir, rayLength, r.mask)
	if !ok {
		// Airborne: no force this tick, contact data left stale.
		w.IsGrounded = false
		w.SuspensionLength = w.SuspensionRestLength
		w.prevCompression = 0
		w.SkidInfo = blendSkid(w.SkidInfo, 1, dt)
		return
	}

	w.IsGrounded = true
	w.SuspensionLength = clamp(hit.Distance-w.Radius, 0, w.SuspensionRestLength)
	w.ContactPosition = hit.Point
	w.ContactNormal = hit.Normal

	// Spring from compression, damper from the compression rate. The damping
	// coefficient is asymmetric: compression while the wheel moves up,
	// relaxation while it extends.
	compression := w.Compression()
	var rate float32
	if dt > 0 {
		rate = (compression - w.prevCompression) / dt
	}
	w.prevCompression = compression

	damping := w.DampingRelaxation
	if rate > 0 {
		damping = w.DampingCompression
	}
	suspensionForce := w.Stiffness*compression + damping*rate
	if suspensionForce < 0 {
		// The suspension pushes only; it never pulls the hull down.
		suspensionForce = 0
	}

	up := rl.Vector3Scale(dir, -1)
	r.hull.ApplyForceAtPoint(rl.Vector3Scale(up, suspensionForce), hit.Point)

	// Grip is proportional to the instantaneous normal load, so an unloaded
	// wheel transmits nothing.
	grip := w.FrictionCoefficient * suspensionForce

	// Wheel basis: steering rotates the axle around the suspension axis.
	steerQ := rl.QuaternionFromAxisAngle(rl.Vector3Scale(w.DirectionLocal, -1), w.SteeringAngle)
	axle := rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3RotateByQuaternion(w.AxleLocal, steerQ), rot))
	forward := rl.Vector3Normalize(rl.Vector3CrossProduct(dir, axle))

	vel := r.hull.LinearVelocity()
	forwardSpeed := rl.Vector3DotProduct(vel, forward)
	sideSpeed := rl.Vector3DotProduct(vel, axle)

	// Longitudinal: engine drive plus brake opposing the rolling direction.
	longitudinal := w.EngineForce
	if w.BrakeForce > 0 && math32.Abs(forwardSpeed) > brakeStopSpeed {
		if forwardSpeed > 0 {
			longitudinal -= w.BrakeForce
		} else {
			longitudinal += w.BrakeForce
		}
	}
	longitudinal = clamp(longitudinal, -grip, grip)

	// Lateral: oppose slip across the axle, up to the available grip.
	lateral := clamp(-sideSpeed*corneringResponse*grip, -grip, grip)

	// Roll influence raises the lateral application point toward the hull,
	// trading body roll for response.
	tirePoint := rl.Vector3Add(hit.Point, rl.Vector3Scale(up, w.RollInfluence*(w.SuspensionLength+w.Radius)))
	tireForce := rl.Vector3Add(rl.Vector3Scale(forward, longitudinal), rl.Vector3Scale(axle, lateral))
	r.hull.ApplyForceAtPoint(tireForce, tirePoint)

	// Skid window: 1 while rolling cleanly, toward 0 while sliding sideways.
	slip := math32.Abs(sideSpeed) / skidFullSlipSpeed
	target := 1 - clamp(slip, 0, 1)
	w.SkidInfo = blendSkid(w.SkidInfo, target, dt)
}

// blendSkid moves the skid metric exponentially toward target so it reflects
// a short sliding window rather than an instantaneous sample.
func blendSkid(current, target, dt float32) float32 {
	if dt <= 0 {
		return current
	}
	blend := 1 - math32.Exp(-skidResponse*dt)
	return clamp(current+(target-current)*blend, 0, 1)
}

package vehicle

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrInvalidWheelConfig is returned by New when a wheel's geometry cannot
	// produce a working suspension. The rig is not created.
	ErrInvalidWheelConfig = errors.New("invalid wheel config")
	// ErrIndexOutOfRange is returned by telemetry accessors for a bad wheel index.
	ErrIndexOutOfRange = errors.New("wheel index out of range")
)

// Body is the hull rigid body the rig drives. It is owned by the host physics
// engine; the rig only reads velocity/rotation and applies forces, never
// position or rotation directly.
type Body interface {
	Mass() float32
	Position() rl.Vector3
	Rotation() rl.Quaternion
	LinearVelocity() rl.Vector3
	ApplyForceAtPoint(force, point rl.Vector3)
}

// RaycastHit is the nearest intersection returned by a Raycaster.
type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycaster casts rays against the host's static geometry. The mask selects
// which collision layers the ray may hit.
type Raycaster interface {
	Cast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (RaycastHit, bool)
}

// Tunables are rig-wide scalars fixed at construction.
type Tunables struct {
	MaxEngineForce       float32
	BrakingForce         float32
	DownforceCoefficient float32
	// MaxWheelAngle is the steering lock in radians; 0 picks DefaultMaxWheelAngle.
	MaxWheelAngle float32
}

// Rig simulates a raycast vehicle: suspension, tire forces, steering, braking
// and downforce, driven once per fixed physics step. Not safe for concurrent
// use; the caller must serialize FixedTick calls.
type Rig struct {
	hull   Body
	caster Raycaster
	mask   uint32
	wheels []*Wheel

	// steering is the smoothed steering state in [-1,1], carried across ticks
	// and the only state persisted across save/reload.
	steering float32

	tun Tunables
}

// New validates wheel geometry and assembles a rig around an externally owned
// hull body. The wheel order is fixed for the rig's lifetime; telemetry
// accessors index into it.
func New(hull Body, caster Raycaster, mask uint32, configs []WheelConfig, tun Tunables) (*Rig, error) {
	if hull == nil {
		return nil, errors.New("vehicle: nil hull body")
	}
	if caster == nil {
		return nil, errors.New("vehicle: nil raycaster")
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no wheels", ErrInvalidWheelConfig)
	}
	if tun.MaxWheelAngle == 0 {
		tun.MaxWheelAngle = DefaultMaxWheelAngle
	}

	wheels := make([]*Wheel, 0, len(configs))
	for i, cfg := range configs {
		if cfg.SuspensionRestLength <= 0 {
			return nil, fmt.Errorf("%w: wheel %d rest length %v", ErrInvalidWheelConfig, i, cfg.SuspensionRestLength)
		}
		if cfg.Radius <= 0 {
			return nil, fmt.Errorf("%w: wheel %d radius %v", ErrInvalidWheelConfig, i, cfg.Radius)
		}
		if cfg.Stiffness <= 0 {
			return nil, fmt.Errorf("%w: wheel %d stiffness %v", ErrInvalidWheelConfig, i, cfg.Stiffness)
		}
		if rl.Vector3Length(cfg.DirectionLocal) < 0.0001 {
			return nil, fmt.Errorf("%w: wheel %d zero suspension direction", ErrInvalidWheelConfig, i)
		}
		if rl.Vector3Length(cfg.AxleLocal) < 0.0001 {
			return nil, fmt.Errorf("%w: wheel %d zero axle", ErrInvalidWheelConfig, i)
		}
		cfg.DirectionLocal = rl.Vector3Normalize(cfg.DirectionLocal)
		cfg.AxleLocal = rl.Vector3Normalize(cfg.AxleLocal)
		wheels = append(wheels, newWheel(cfg))
	}

	return &Rig{
		hull:   hull,
		caster: caster,
		mask:   mask,
		wheels: wheels,
		tun:    tun,
	}, nil
}

// FixedTick advances the rig by one fixed physics step: it turns control
// intent into per-wheel targets, runs the suspension solver on every wheel,
// then applies speed-scaled downforce to the hull. It never fails; malformed
// dt only suppresses the rate-derived damping terms.
func (r *Rig) FixedTick(dt float32, controls Controls) {
	r.updateDrive(controls)
	for _, w := range r.wheels {
		r.stepSuspension(w, dt)
	}
	r.applyDownforce()
}

// applyDownforce presses the hull toward its local down axis, scaled by
// forward/backward speed only. Lateral and vertical speed contribute nothing.
func (r *Rig) applyDownforce() {
	if r.tun.DownforceCoefficient <= 0 {
		return
	}
	rot := r.hull.Rotation()
	localVel := rl.Vector3RotateByQuaternion(r.hull.LinearVelocity(), rl.QuaternionInvert(rot))
	magnitude := math32.Abs(localVel.Z) * r.tun.DownforceCoefficient
	if magnitude == 0 {
		return
	}
	down := rl.Vector3RotateByQuaternion(rl.Vector3{X: 0, Y: -1, Z: 0}, rot)
	r.hull.ApplyForceAtPoint(rl.Vector3Scale(down, magnitude), r.hull.Position())
}

// NumWheels returns the fixed wheel count.
func (r *Rig) NumWheels() int {
	return len(r.wheels)
}

// Steering returns the smoothed steering state in [-1,1].
func (r *Rig) Steering() float32 {
	return r.steering
}

func (r *Rig) wheelAt(i int) (*Wheel, error) {
	if i < 0 || i >= len(r.wheels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(r.wheels))
	}
	return r.wheels[i], nil
}

// IsGrounded reports whether wheel i hit ground on the last tick.
func (r *Rig) IsGrounded(i int) (bool, error) {
	w, err := r.wheelAt(i)
	if err != nil {
		return false, err
	}
	return w.IsGrounded, nil
}

// SkidInfo returns wheel i's smoothed grip metric in [0,1].
func (r *Rig) SkidInfo(i int) (float32, error) {
	w, err := r.wheelAt(i)
	if err != nil {
		return 0, err
	}
	return w.SkidInfo, nil
}

// BrakeForce returns wheel i's brake force target from the last tick.
func (r *Rig) BrakeForce(i int) (float32, error) {
	w, err := r.wheelAt(i)
	if err != nil {
		return 0, err
	}
	return w.BrakeForce, nil
}

// ContactPosition returns wheel i's world-space contact point. Only valid
// while the wheel is grounded; callers must check IsGrounded first.
func (r *Rig) ContactPosition(i int) (rl.Vector3, error) {
	w, err := r.wheelAt(i)
	if err != nil {
		return rl.Vector3{}, err
	}
	return w.ContactPosition, nil
}

// WheelAt returns a copy of wheel i's full state for inspection.
func (r *Rig) WheelAt(i int) (Wheel, error) {
	w, err := r.wheelAt(i)
	if err != nil {
		return Wheel{}, err
	}
	return *w, nil
}

// Serialize captures the state that must survive a save/reload cycle. All
// other wheel state is tick-derived and settles within one step after load.
func (r *Rig) Serialize() map[string]any {
	return map[string]any{
		"type":     "VehicleRig",
		"steering": r.steering,
	}
}

// Deserialize restores persisted state produced by Serialize.
func (r *Rig) Deserialize(data map[string]any) {
	if v, ok := data["steering"].(float64); ok {
		r.steering = float32(v)
	}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package vehicle

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls is the high-level control intent read once per fixed tick. Input
// mapping is the host's concern; the rig only consumes the resulting axes.
type Controls struct {
	// Steer is -1 (left), 0, or 1 (right).
	Steer float32
	// Throttle is in [-0.5, 1]; reverse is half-strength by convention.
	Throttle float32
	Brake    bool
}

// DefaultMaxWheelAngle is the steering lock used when Tunables leave it unset.
const DefaultMaxWheelAngle = 22.5 * rl.Deg2rad

// Steering filter rates. Convergence while actively steering is deliberately
// sluggish for stability; return-to-center is faster. Both rates are part of
// the handling feel and must stay asymmetric.
const (
	steerTrackRate  = 0.05
	steerCenterRate = 0.8
)

// updateDrive translates control intent into per-wheel steering angle, engine
// force and brake force. Pure function of the inputs and the smoothed
// steering state; it has no failure modes.
func (r *Rig) updateDrive(c Controls) {
	target := clamp(c.Steer, -1, 1)
	if target != 0 {
		r.steering = r.steering*(1-steerTrackRate) + target*steerTrackRate
	} else {
		r.steering *= steerCenterRate
	}

	throttle := clamp(c.Throttle, -0.5, 1)

	for _, w := range r.wheels {
		if w.IsFrontWheel {
			w.SteeringAngle = r.steering * r.tun.MaxWheelAngle
		}
		if w.IsDriveWheel {
			w.EngineForce = r.tun.MaxEngineForce * throttle
		} else {
			w.EngineForce = 0
		}
		// Uniform braking on every wheel, no per-wheel bias.
		if c.Brake {
			w.BrakeForce = r.tun.BrakingForce
		} else {
			w.BrakeForce = 0
		}
	}
}

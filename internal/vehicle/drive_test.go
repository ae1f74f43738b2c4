package vehicle

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSteeringFirstTickValue(t *testing.T) {
	rig, err := New(newStubBody(), casterAt(0.5), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}

	rig.FixedTick(testDt, Controls{Steer: 1})

	if math32.Abs(rig.Steering()-0.05) > 0.000001 {
		t.Errorf("steering after one tick = %v, want 0.05", rig.Steering())
	}
}

func TestSteeringConvergesMonotonically(t *testing.T) {
	rig, err := New(newStubBody(), casterAt(0.5), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}

	prev := rig.Steering()
	for i := 0; i < 200; i++ {
		rig.FixedTick(testDt, Controls{Steer: 1})
		s := rig.Steering()
		if s <= prev {
			t.Fatalf("tick %d: steering %v did not increase from %v", i, s, prev)
		}
		if s > 1 {
			t.Fatalf("tick %d: steering %v overshot 1", i, s)
		}
		prev = s
	}
	if prev < 0.99 {
		t.Errorf("steering after 200 ticks = %v, want near 1", prev)
	}
}

func TestSteeringDecaysToCenter(t *testing.T) {
	rig, err := New(newStubBody(), casterAt(0.5), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		rig.FixedTick(testDt, Controls{Steer: -1})
	}

	prev := rig.Steering()
	if prev >= 0 {
		t.Fatalf("expected negative steering, got %v", prev)
	}
	for i := 0; i < 60; i++ {
		rig.FixedTick(testDt, Controls{})
		s := rig.Steering()
		if math32.Abs(s) >= math32.Abs(prev) && prev != 0 {
			t.Fatalf("tick %d: |steering| %v did not decay from %v", i, s, prev)
		}
		prev = s
	}
	// Return-to-center is the faster filter; 60 ticks is plenty.
	if math32.Abs(prev) > 0.001 {
		t.Errorf("steering after decay = %v, want about 0", prev)
	}
}

func TestSteeringAngleOnFrontWheelsOnly(t *testing.T) {
	rig, err := New(newStubBody(), casterAt(0.5), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		rig.FixedTick(testDt, Controls{Steer: 1})
	}

	want := rig.Steering() * DefaultMaxWheelAngle
	for i := 0; i < 4; i++ {
		w, err := rig.WheelAt(i)
		if err != nil {
			t.Fatal(err)
		}
		if w.IsFrontWheel {
			if math32.Abs(w.SteeringAngle-want) > 0.000001 {
				t.Errorf("front wheel %d steering angle = %v, want %v", i, w.SteeringAngle, want)
			}
		} else if w.SteeringAngle != 0 {
			t.Errorf("rear wheel %d steering angle = %v, want 0", i, w.SteeringAngle)
		}
	}
}

func TestEngineForceOnDriveWheelsOnly(t *testing.T) {
	// Hull at rest, all wheels grounded at half compression.
	rig, err := New(newStubBody(), casterAt(0.3+0.25), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}

	rig.FixedTick(testDt, Controls{Throttle: 1})

	for i := 0; i < 4; i++ {
		w, _ := rig.WheelAt(i)
		if !w.IsGrounded {
			t.Fatalf("wheel %d not grounded", i)
		}
		if w.IsDriveWheel {
			if w.EngineForce != 4000 {
				t.Errorf("drive wheel %d engine force = %v, want 4000", i, w.EngineForce)
			}
		} else if w.EngineForce != 0 {
			t.Errorf("wheel %d engine force = %v, want 0", i, w.EngineForce)
		}
	}
}

func TestReverseThrottleHalfStrength(t *testing.T) {
	rig, err := New(newStubBody(), casterAt(0.5), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}

	// Full reverse intent clamps to half strength.
	rig.FixedTick(testDt, Controls{Throttle: -1})

	for i := 0; i < 4; i++ {
		w, _ := rig.WheelAt(i)
		if w.IsDriveWheel && w.EngineForce != -2000 {
			t.Errorf("drive wheel %d reverse engine force = %v, want -2000", i, w.EngineForce)
		}
	}
}

func TestBrakeAppliesUniformly(t *testing.T) {
	rig, err := New(newStubBody(), casterAt(0.5), 1, fourWheels(), testTunables())
	if err != nil {
		t.Fatal(err)
	}

	rig.FixedTick(testDt, Controls{Steer: 1, Throttle: 1, Brake: true})
	for i := 0; i < 4; i++ {
		bf, err := rig.BrakeForce(i)
		if err != nil {
			t.Fatal(err)
		}
		if bf != 800 {
			t.Errorf("wheel %d brake force = %v, want 800", i, bf)
		}
	}

	rig.FixedTick(testDt, Controls{Throttle: 1})
	for i := 0; i < 4; i++ {
		bf, _ := rig.BrakeForce(i)
		if bf != 0 {
			t.Errorf("wheel %d brake force after release = %v, want 0", i, bf)
		}
	}
}

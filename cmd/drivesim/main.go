// Headless fixed-tick driver: drops a rig on a ground plane and runs scripted
// throttle/steer/brake phases, printing telemetry after each phase.
package main

import (
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vehicle3d/internal/physics"
	"vehicle3d/internal/preset"
	"vehicle3d/internal/vehicle"
)

func main() {
	def := preset.Default()
	if len(os.Args) > 1 {
		loaded, err := preset.Load(os.Args[1])
		if err != nil {
			log.Fatalf("drivesim: %v", err)
		}
		def = loaded
	}

	world := physics.NewWorld()
	world.Static.AddBox(physics.Box{
		Center: rl.Vector3{X: 0, Y: -0.5, Z: 0},
		Size:   rl.Vector3{X: 400, Y: 1, Z: 400},
		Layer:  physics.LayerGround,
	})

	hull := physics.NewHull(1200, rl.Vector3{X: 1.8, Y: 0.6, Z: 3.2}, rl.Vector3{X: 0, Y: 0.8, Z: 0})
	world.AddHull(hull)

	configs, tunables := def.Rig()
	rig, err := vehicle.New(hull, world.Static, physics.LayerGround, configs, tunables)
	if err != nil {
		log.Fatalf("drivesim: %v", err)
	}

	fmt.Printf("Preset %q, %d wheels, hull mass %.0f kg\n\n", def.Name, rig.NumWheels(), hull.Mass())

	const dt = 1.0 / 60.0
	phases := []struct {
		name     string
		ticks    int
		controls vehicle.Controls
	}{
		{"settle", 120, vehicle.Controls{}},
		{"accelerate", 360, vehicle.Controls{Throttle: 1}},
		{"corner", 300, vehicle.Controls{Throttle: 1, Steer: 1}},
		{"brake", 240, vehicle.Controls{Brake: true}},
		{"reverse", 180, vehicle.Controls{Throttle: -0.5}},
	}

	for _, phase := range phases {
		for i := 0; i < phase.ticks; i++ {
			rig.FixedTick(dt, phase.controls)
			world.Step(dt)
		}
		report(phase.name, rig, hull)
	}
}

func report(phase string, rig *vehicle.Rig, hull *physics.Hull) {
	pos := hull.Position()
	speed := rl.Vector3Length(hull.LinearVelocity())

	grounded := 0
	minSkid := float32(1)
	for i := 0; i < rig.NumWheels(); i++ {
		if g, _ := rig.IsGrounded(i); g {
			grounded++
		}
		if s, _ := rig.SkidInfo(i); s < minSkid {
			minSkid = s
		}
	}

	fmt.Printf("%-10s pos=(%6.1f %5.2f %6.1f)  speed=%5.1f m/s  steering=%+.2f  grounded=%d/%d  skid=%.2f\n",
		phase, pos.X, pos.Y, pos.Z, speed, rig.Steering(), grounded, rig.NumWheels(), minSkid)
}

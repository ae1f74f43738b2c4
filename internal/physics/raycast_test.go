package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCastBoxHitTopFace(t *testing.T) {
	world := NewStaticWorld()
	world.AddBox(Box{
		Center: rl.Vector3{X: 0, Y: -0.5, Z: 0},
		Size:   rl.Vector3{X: 100, Y: 1, Z: 100},
		Layer:  LayerGround,
	})

	hit, ok := world.Cast(rl.Vector3{X: 0, Y: 2, Z: 0}, rl.Vector3{X: 0, Y: -1, Z: 0}, 10, LayerGround)
	if !ok {
		t.Fatal("expected hit")
	}
	if math32.Abs(hit.Distance-2) > 0.0001 {
		t.Errorf("distance = %v, want 2", hit.Distance)
	}
	if hit.Normal != (rl.Vector3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("normal = %v, want up", hit.Normal)
	}
	if math32.Abs(hit.Point.Y) > 0.0001 {
		t.Errorf("hit point Y = %v, want 0", hit.Point.Y)
	}
}

func TestCastBoxMiss(t *testing.T) {
	world := NewStaticWorld()
	world.AddBox(Box{Center: rl.Vector3{X: 50, Y: 0, Z: 0}, Size: rl.Vector3{X: 1, Y: 1, Z: 1}, Layer: LayerGround})

	cases := []struct {
		name      string
		origin    rl.Vector3
		direction rl.Vector3
		maxDist   float32
	}{
		{"wrong direction", rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: -1, Y: 0, Z: 0}, 100},
		{"out of range", rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 0, Z: 0}, 10},
		{"parallel offset", rl.Vector3{X: 0, Y: 5, Z: 0}, rl.Vector3{X: 1, Y: 0, Z: 0}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := world.Cast(tc.origin, tc.direction, tc.maxDist, LayerAll); ok {
				t.Error("expected miss")
			}
		})
	}
}

func TestCastMaskFiltering(t *testing.T) {
	world := NewStaticWorld()
	world.AddBox(Box{Center: rl.Vector3{X: 0, Y: -0.5, Z: 0}, Size: rl.Vector3{X: 10, Y: 1, Z: 10}, Layer: LayerObstacle})

	origin := rl.Vector3{X: 0, Y: 2, Z: 0}
	down := rl.Vector3{X: 0, Y: -1, Z: 0}

	if _, ok := world.Cast(origin, down, 10, LayerGround); ok {
		t.Error("ground mask must not hit obstacle layer")
	}
	if _, ok := world.Cast(origin, down, 10, LayerObstacle); !ok {
		t.Error("obstacle mask should hit obstacle layer")
	}
	if _, ok := world.Cast(origin, down, 10, LayerAll); !ok {
		t.Error("LayerAll should hit everything")
	}
}

func TestCastSphere(t *testing.T) {
	world := NewStaticWorld()
	world.AddSphere(Sphere{Center: rl.Vector3{X: 0, Y: 0, Z: 5}, Radius: 1, Layer: LayerObstacle})

	hit, ok := world.Cast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: 1}, 10, LayerAll)
	if !ok {
		t.Fatal("expected hit")
	}
	if math32.Abs(hit.Distance-4) > 0.0001 {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
	if math32.Abs(hit.Normal.Z+1) > 0.0001 {
		t.Errorf("normal = %v, want -Z", hit.Normal)
	}
}

func TestCastReturnsNearest(t *testing.T) {
	world := NewStaticWorld()
	world.AddBox(Box{Center: rl.Vector3{X: 0, Y: 0, Z: 8}, Size: rl.Vector3{X: 1, Y: 1, Z: 1}, Layer: LayerGround})
	world.AddBox(Box{Center: rl.Vector3{X: 0, Y: 0, Z: 3}, Size: rl.Vector3{X: 1, Y: 1, Z: 1}, Layer: LayerGround})
	world.AddSphere(Sphere{Center: rl.Vector3{X: 0, Y: 0, Z: 6}, Radius: 0.5, Layer: LayerGround})

	hit, ok := world.Cast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: 1}, 20, LayerAll)
	if !ok {
		t.Fatal("expected hit")
	}
	if math32.Abs(hit.Distance-2.5) > 0.0001 {
		t.Errorf("distance = %v, want 2.5 (nearest box face)", hit.Distance)
	}
}

package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World steps dynamic hulls under gravity. Static geometry never moves and
// only participates through raycasts.
type World struct {
	Gravity rl.Vector3
	Hulls   []*Hull
	Static  *StaticWorld
}

func NewWorld() *World {
	return &World{
		Gravity: rl.Vector3{X: 0, Y: -20.0, Z: 0},
		Static:  NewStaticWorld(),
	}
}

func (w *World) AddHull(h *Hull) {
	w.Hulls = append(w.Hulls, h)
}

func (w *World) RemoveHull(h *Hull) {
	for i, hull := range w.Hulls {
		if hull == h {
			w.Hulls = append(w.Hulls[:i], w.Hulls[i+1:]...)
			return
		}
	}
}

// Step advances every hull by one fixed tick. Callers run their rigs'
// FixedTick first so suspension forces are in the hulls' accumulators.
func (w *World) Step(dt float32) {
	for _, h := range w.Hulls {
		h.Step(dt, w.Gravity)
	}
}

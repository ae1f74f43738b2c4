package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vehicle3d/internal/vehicle"
)

// Collision layers for static geometry. A ray only hits shapes whose layer
// intersects the ray's mask.
const (
	LayerGround uint32 = 1 << iota
	LayerObstacle
	LayerAll = ^uint32(0)
)

// Box is an axis-aligned static collision box.
type Box struct {
	Center rl.Vector3
	Size   rl.Vector3
	Layer  uint32
}

// Sphere is a static collision sphere.
type Sphere struct {
	Center rl.Vector3
	Radius float32
	Layer  uint32
}

// StaticWorld holds the immovable collision geometry rays are cast against.
// It implements vehicle.Raycaster.
type StaticWorld struct {
	Boxes   []Box
	Spheres []Sphere
}

func NewStaticWorld() *StaticWorld {
	return &StaticWorld{}
}

func (s *StaticWorld) AddBox(b Box) {
	s.Boxes = append(s.Boxes, b)
}

func (s *StaticWorld) AddSphere(sp Sphere) {
	s.Spheres = append(s.Spheres, sp)
}

// Cast returns the nearest intersection within maxDistance among shapes whose
// layer matches the mask.
func (s *StaticWorld) Cast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (vehicle.RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)

	var closest vehicle.RaycastHit
	closest.Distance = maxDistance
	found := false

	for i := range s.Boxes {
		b := &s.Boxes[i]
		if b.Layer&mask == 0 {
			continue
		}
		if hit, ok := castBox(origin, direction, b, maxDistance); ok && hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}
	for i := range s.Spheres {
		sp := &s.Spheres[i]
		if sp.Layer&mask == 0 {
			continue
		}
		if hit, ok := castSphere(origin, direction, sp, maxDistance); ok && hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// castBox is a slab test against the box's min/max corners.
func castBox(origin, direction rl.Vector3, box *Box, maxDistance float32) (vehicle.RaycastHit, bool) {
	half := rl.Vector3Scale(box.Size, 0.5)
	min := rl.Vector3Subtract(box.Center, half)
	max := rl.Vector3Add(box.Center, half)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{min.X, min.Y, min.Z}
	hi := [3]float32{max.X, max.Y, max.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return vehicle.RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmin > tmax || tmax < 0 {
		return vehicle.RaycastHit{}, false
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return vehicle.RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return vehicle.RaycastHit{
		Point:    point,
		Normal:   boxFaceNormal(point, min, max),
		Distance: t,
	}, true
}

// boxFaceNormal picks the outward normal of the face the point lies on.
func boxFaceNormal(point, min, max rl.Vector3) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case math32.Abs(point.X-min.X) < epsilon:
		return rl.Vector3{X: -1}
	case math32.Abs(point.X-max.X) < epsilon:
		return rl.Vector3{X: 1}
	case math32.Abs(point.Y-min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case math32.Abs(point.Y-max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case math32.Abs(point.Z-min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func castSphere(origin, direction rl.Vector3, sphere *Sphere, maxDistance float32) (vehicle.RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, sphere.Center)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return vehicle.RaycastHit{}, false
	}

	root := math32.Sqrt(discriminant)
	t := (-b - root) / 2
	if t < 0 {
		t = (-b + root) / 2
	}
	if t < 0 || t > maxDistance {
		return vehicle.RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, sphere.Center))
	return vehicle.RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

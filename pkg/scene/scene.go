package scene

import (
	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
	"github.com/INDAPlus21/emilhul-task-13/pkg/geometry"
	"github.com/INDAPlus21/emilhul-task-13/pkg/renderer"
)

// Scene holds an ordered collection of primitives together with the camera
// and background colors. Scenes are built once and not mutated while
// rendering.
type Scene struct {
	Camera      *renderer.Camera
	Primitives  []geometry.Primitive
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the top and bottom colors of the sky gradient
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// Hit tests the ray against every primitive and returns the closest hit
// within [tMin, tMax]. The search interval's upper bound shrinks to each hit
// found, so a later primitive can never report a farther intersection.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, primitive := range s.Primitives {
		if hit, isHit := primitive.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

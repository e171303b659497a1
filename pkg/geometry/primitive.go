package geometry

import (
	"fmt"
	"math"

	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
)

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, oriented against the incoming ray
	FrontFace bool      // Whether the ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Kind identifies a primitive variant.
//
// Primitives form a closed set dispatched by tag so that all intersection
// logic lives in one place. New variants (plane, triangle) extend the enum
// and the Hit switch.
type Kind int

const (
	// KindSphere is a sphere defined by center and radius
	KindSphere Kind = iota
)

// Primitive is a tagged variant over the primitive kinds.
// Fields beyond Kind are interpreted per variant; for KindSphere these are
// Center and Radius. Immutable after construction.
type Primitive struct {
	Kind   Kind
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere primitive.
// A non-positive radius is a scene-construction bug and panics.
func NewSphere(center core.Vec3, radius float64) Primitive {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	return Primitive{
		Kind:   KindSphere,
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects the primitive within [tMin, tMax],
// dispatching on the variant tag.
func (p Primitive) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	switch p.Kind {
	case KindSphere:
		return p.hitSphere(ray, tMin, tMax)
	default:
		panic(fmt.Sprintf("geometry: unknown primitive kind %d", p.Kind))
	}
}

// hitSphere solves the quadratic from substituting the ray equation into
// |P - center|² = radius².
func (p Primitive) hitSphere(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(p.Center)

	// Half-b form: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - p.Radius*p.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root, fall back to the farther one
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	// Outward normal is unit length by construction
	outwardNormal := hit.Point.Subtract(p.Center).Multiply(1.0 / p.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

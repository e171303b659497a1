package renderer

import (
	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
)

// CameraConfig holds the viewport parameters a camera is derived from
type CameraConfig struct {
	AspectRatio    float64   // Width / height of the viewport
	ViewportHeight float64   // World-space height of the viewport
	FocalLength    float64   // Distance from origin to the viewport plane
	Origin         core.Vec3 // Camera position
}

// DefaultCameraConfig returns the standard viewport: 2:1 aspect,
// a 4x2 viewport one unit in front of the origin, looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:    2.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
		Origin:         core.NewVec3(0, 0, 0),
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight != 0 {
		merged.ViewportHeight = override.ViewportHeight
	}
	if override.FocalLength != 0 {
		merged.FocalLength = override.FocalLength
	}
	if override.Origin != (core.Vec3{}) {
		merged.Origin = override.Origin
	}
	return merged
}

// Camera maps normalized screen coordinates to world-space rays.
// The viewport geometry is computed once at construction; GetRay is a pure
// function of (u, v) afterwards.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from the given viewport configuration
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray through screen coordinates (u, v) where 0 <= u,v <= 1,
// with v measured upward from the bottom of the viewport
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

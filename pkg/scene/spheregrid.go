package scene

import (
	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
	"github.com/INDAPlus21/emilhul-task-13/pkg/geometry"
	"github.com/INDAPlus21/emilhul-task-13/pkg/renderer"
)

// NewSphereGridScene creates an n x n grid of small spheres floating in
// front of the camera over a ground sphere. With many primitives per ray it
// makes a useful stress scene for the parallel render path.
func NewSphereGridScene(n int, cameraOverrides ...renderer.CameraConfig) *Scene {
	if n <= 0 {
		n = 5
	}

	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Camera:      renderer.NewCamera(cameraConfig),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	// Spread the grid across the viewport at z = -2
	const radius = 0.08
	const spacing = 0.35
	offset := spacing * float64(n-1) / 2

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			center := core.NewVec3(
				float64(col)*spacing-offset,
				float64(row)*spacing-offset+0.3,
				-2,
			)
			s.Add(geometry.NewSphere(center, radius))
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100)) // Ground

	return s
}

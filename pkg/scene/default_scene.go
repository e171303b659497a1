package scene

import (
	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
	"github.com/INDAPlus21/emilhul-task-13/pkg/geometry"
	"github.com/INDAPlus21/emilhul-task-13/pkg/renderer"
)

// NewDefaultScene creates the classic two-sphere scene: a small sphere
// resting on a very large ground sphere, under a white-to-blue sky
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Camera:      renderer.NewCamera(cameraConfig),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // Sky blue
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // White
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), // Ground
	)

	return s
}

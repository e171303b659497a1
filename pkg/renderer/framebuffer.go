package renderer

import (
	"image"
	"image/color"

	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
)

// Framebuffer is a row-major grid of averaged, linear-space pixel colors.
// Gamma correction and clamping happen on conversion to an output image,
// so the stored values remain usable for analysis.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear-space color at (x, y); row 0 is the top of the image
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.Width+x]
}

// Set stores the linear-space color at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.Width+x] = c
}

// vec3ToRGBA converts a linear color to 8-bit RGBA with gamma-2 correction
// and clamping to the valid output range
func vec3ToRGBA(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// ToRGBA encodes the framebuffer as a gamma-corrected 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, vec3ToRGBA(fb.At(x, y)))
		}
	}

	return img
}

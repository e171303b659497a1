// Package output serializes finished rasters to image files.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePPM writes the image as a plain-text P3 raster: a header declaring
// width, height and the maximum channel value, followed by one RGB triple
// per pixel in row-major order.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return fmt.Errorf("failed to write PPM pixel: %w", err)
			}
		}
	}

	return bw.Flush()
}

// SavePPM writes the image to filename in P3 format
func SavePPM(filename string, img *image.RGBA) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return WritePPM(file, img)
}

// SavePNG writes the image to filename as a PNG
func SavePNG(filename string, img *image.RGBA) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return nil
}

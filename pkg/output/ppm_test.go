package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, testImage()))

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"10 20 30\n"
	require.Equal(t, expected, buf.String())
}

func TestSavePPM(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.ppm")
	require.NoError(t, SavePPM(filename, testImage()))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Contains(t, string(data), "P3\n2 2\n255\n")
}

func TestSavePNG_RoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(filename, testImage()))

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := png.Decode(file)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 2), decoded.Bounds())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0), b)
}

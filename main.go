package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/INDAPlus21/emilhul-task-13/pkg/output"
	"github.com/INDAPlus21/emilhul-task-13/pkg/renderer"
	"github.com/INDAPlus21/emilhul-task-13/pkg/scene"
)

// renderOptions holds the validated command line configuration
type renderOptions struct {
	sceneType string
	width     int
	height    int
	samples   int
	maxDepth  int
	workers   int
	outFile   string
	format    string
}

func main() {
	opts := renderOptions{}
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type: 'default' or 'grid'")
	flag.IntVar(&opts.width, "width", 400, "Output image width in pixels")
	flag.IntVar(&opts.height, "height", 200, "Output image height in pixels")
	flag.IntVar(&opts.samples, "samples", 100, "Antialiasing samples per pixel")
	flag.IntVar(&opts.maxDepth, "max-depth", 50, "Maximum ray bounce depth")
	flag.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = CPU count)")
	flag.StringVar(&opts.outFile, "output", "", "Output file (default result.<format>)")
	flag.StringVar(&opts.format, "format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Diffuse Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Sphere resting on a large ground sphere")
		fmt.Println("  grid    - Grid of small spheres, stresses the parallel path")
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts renderOptions) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	aspectRatio := float64(opts.width) / float64(opts.height)
	selectedScene, err := createScene(opts.sceneType, aspectRatio)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, opts.width, opts.height, renderer.NewDefaultLogger())

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = opts.workers
	config.Sampling.SamplesPerPixel = opts.samples
	config.Sampling.MaxDepth = opts.maxDepth
	raytracer.SetRenderConfig(config)

	startTime := time.Now()
	fb, stats := raytracer.Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d pixels, %.1f samples/pixel)\n",
		renderTime, stats.TotalPixels, stats.AverageSamples)

	filename := opts.outFile
	if filename == "" {
		filename = "result." + opts.format
	}

	img := fb.ToRGBA()
	switch opts.format {
	case "ppm":
		err = output.SavePPM(filename, img)
	case "png":
		err = output.SavePNG(filename, img)
	default:
		return fmt.Errorf("unknown output format %q (want 'ppm' or 'png')", opts.format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// validateOptions rejects malformed configuration before the render starts
func validateOptions(opts renderOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.samples <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", opts.samples)
	}
	if opts.maxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", opts.maxDepth)
	}
	return nil
}

// createScene builds the named scene with the camera matched to the output
// aspect ratio
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	override := renderer.CameraConfig{AspectRatio: aspectRatio}

	switch sceneType {
	case "default":
		return scene.NewDefaultScene(override), nil
	case "grid":
		return scene.NewSphereGridScene(5, override), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q (want 'default' or 'grid')", sceneType)
	}
}

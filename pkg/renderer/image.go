package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

const gamma = 2.2

// renderImage converts the accumulation buffer to an 8-bit image: average
// over iterations, clamp, gamma-correct. Pixel index (0,0) is the bottom
// left corner of the viewport, so rows are flipped for image space.
func renderImage(accum []core.Vec3, width, height, iterations int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scale := 1.0 / float64(iterations)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := accum[y*width+x].
				Multiply(scale).
				Clamp(0, 1).
				GammaCorrect(gamma)

			img.Set(x, height-1-y, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG saves an image to a PNG file
func WritePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

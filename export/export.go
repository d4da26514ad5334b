// Package export serializes a rendered icon canvas to disk: a downsampled PNG
// and a multi-resolution ICO container.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// PNGSize is the edge length of the single-resolution raster export.
const PNGSize = 256

// ICOSizes is the fixed ascending set of square sizes embedded in the
// container.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// resample scales src to a size-by-size square with Catmull-Rom filtering.
func resample(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// WritePNG downsamples the canvas to PNGSize and writes it as a compressed
// PNG.
func WritePNG(canvas image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, resample(canvas, PNGSize)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// WriteICO resamples the canvas to each entry of ICOSizes and writes them as
// one ICO container.
func WriteICO(canvas image.Image, path string) error {
	imgs := make([]image.Image, len(ICOSizes))
	for i, size := range ICOSizes {
		imgs[i] = resample(canvas, size)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, imgs); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

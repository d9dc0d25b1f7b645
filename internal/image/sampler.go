// Package image turns image files into flat sequences of pixel samples.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// maxGIFFrames bounds how many frames of an animated image contribute
// samples, keeping clustering cost tractable for long animations.
const maxGIFFrames = 32

var (
	// ErrUnknownFormat reports a file whose extension is not recognised
	// as any image format.
	ErrUnknownFormat = errors.New("not recognized as an image format")

	// ErrUnsupportedFormat reports a recognised image format with no
	// registered decoder.
	ErrUnsupportedFormat = errors.New("not supported")
)

// supportedExtensions lists the formats with a registered decoder.
var supportedExtensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// recognisedExtensions lists image formats we know of but cannot decode.
var recognisedExtensions = map[string]string{
	".avif": "AVIF",
	".heic": "HEIC",
	".heif": "HEIF",
	".ico":  "ICO",
	".jxl":  "JPEG XL",
}

// Samples extracts one sample per pixel from the image at path.
//
// There are two sampling variants, selected by file extension: animated
// GIFs contribute every pixel of a bounded selection of frames, anything
// else contributes every pixel of the single decoded frame. Fully
// transparent pixels carry no recoverable colour and are skipped.
func Samples(path string) ([]color.Color, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		if name, ok := recognisedExtensions[ext]; ok {
			return nil, fmt.Errorf("the image format %s is %w", name, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("the file extension %q was %w", ext, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		// I/O failures are reported verbatim with the system reason.
		return nil, err
	}
	defer f.Close()

	if ext == ".gif" {
		return sampleFrames(f)
	}
	return sampleImage(f)
}

// sampleImage decodes a single-frame image and samples every pixel.
func sampleImage(f *os.File) ([]color.Color, error) {
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", formatName(format), err)
	}

	samples := appendSamples(nil, img)
	if len(samples) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels to sample")
	}
	return samples, nil
}

// sampleFrames decodes an animated GIF and samples every pixel of a
// strided selection of frames. The stride bounds total sample count while
// preserving frame diversity; frame pixels come straight out of each
// frame's palette, so no decode blending can introduce colours the
// animation never shows.
func sampleFrames(f *os.File) ([]color.Color, error) {
	anim, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gif image: %w", err)
	}
	if len(anim.Image) == 0 {
		return nil, fmt.Errorf("gif contains no frames")
	}

	stride := frameStride(len(anim.Image))
	var samples []color.Color
	for i := 0; i < len(anim.Image); i += stride {
		samples = appendSamples(samples, anim.Image[i])
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels to sample")
	}
	return samples, nil
}

// frameStride returns the stride over an animation's frames. The stride
// is forced odd so an animation alternating between two frames always
// contributes both phases.
func frameStride(frames int) int {
	if frames <= maxGIFFrames {
		return 1
	}
	stride := (frames + maxGIFFrames - 1) / maxGIFFrames
	if stride%2 == 0 {
		stride++
	}
	return stride
}

// appendSamples appends one sample per opaque pixel of img.
func appendSamples(samples []color.Color, img image.Image) []color.Color {
	bounds := img.Bounds()
	if samples == nil {
		samples = make([]color.Color, 0, bounds.Dx()*bounds.Dy())
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			samples = append(samples, c)
		}
	}
	return samples
}

// formatName names a decoded format for error messages.
func formatName(format string) string {
	if format == "" {
		return "unknown"
	}
	return format
}

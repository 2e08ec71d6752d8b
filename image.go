package render

import "github.com/gogpu/render/geom"

// InterpolationMode describes how image pixels are sampled when an image is
// drawn scaled.
type InterpolationMode int

const (
	// NearestNeighbor selects the closest pixel (no interpolation).
	NearestNeighbor InterpolationMode = iota
	// Bilinear performs linear interpolation between neighboring pixels.
	Bilinear
)

// String returns the mode name for logs.
func (m InterpolationMode) String() string {
	switch m {
	case NearestNeighbor:
		return "nearest-neighbor"
	case Bilinear:
		return "bilinear"
	}
	return "unknown"
}

// ImageFormat describes the in-memory layout of caller-provided pixel data.
type ImageFormat int

const (
	// FormatGrayscale is 1 byte per pixel.
	FormatGrayscale ImageFormat = iota
	// FormatRGB is 3 bytes per pixel, no alpha.
	FormatRGB
	// FormatRGBASeparate is 4 bytes per pixel, alpha not premultiplied.
	FormatRGBASeparate
	// FormatRGBAPremul is 4 bytes per pixel with premultiplied alpha.
	FormatRGBAPremul
)

// String returns the format name for logs.
func (f ImageFormat) String() string {
	switch f {
	case FormatGrayscale:
		return "grayscale"
	case FormatRGB:
		return "rgb"
	case FormatRGBASeparate:
		return "rgba"
	case FormatRGBAPremul:
		return "rgba-premul"
	}
	return "unknown"
}

// BytesPerPixel returns the pixel stride of the format.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case FormatGrayscale:
		return 1
	case FormatRGB:
		return 3
	case FormatRGBASeparate, FormatRGBAPremul:
		return 4
	}
	return 0
}

// Image is a backend-held image created by [Context.MakeImage]. An image is
// only valid with the backend that created it; drawing a foreign image is a
// logged no-op.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() geom.Size
}

// Package thumbnail scales captured workspace pixels for the switcher overlay.
package thumbnail

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/bnema/gridterm/internal/application/port"
)

// Scaler implements port.BitmapScaler with bilinear interpolation.
type Scaler struct {
	interp draw.Interpolator
}

var _ port.BitmapScaler = (*Scaler)(nil)

// NewScaler creates a bilinear scaler.
func NewScaler() *Scaler {
	return &Scaler{interp: draw.BiLinear}
}

// ScaleBitmap returns src scaled to targetHeight, keeping its aspect ratio.
// Empty sources and non-positive heights yield an empty image.
func (s *Scaler) ScaleBitmap(src image.Image, targetHeight int) image.Image {
	if src == nil || targetHeight <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	width := ScaledWidth(b.Dx(), b.Dy(), targetHeight)
	dst := image.NewRGBA(image.Rect(0, 0, width, targetHeight))
	s.interp.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// ScaledWidth returns the width of a w×h image scaled to height, at least 1.
func ScaledWidth(w, h, height int) int {
	if h <= 0 {
		return 1
	}
	return max(w*height/h, 1)
}

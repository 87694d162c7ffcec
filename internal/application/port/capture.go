package port

import (
	"context"
	"image"

	"github.com/bnema/gridterm/internal/domain/entity"
)

// ScreenCapturer grabs the pixels currently shown in a screen rectangle.
type ScreenCapturer interface {
	CaptureVisiblePixels(ctx context.Context, area entity.Rect) (image.Image, error)
}

// BitmapScaler scales an image to a target height, keeping its aspect ratio.
type BitmapScaler interface {
	ScaleBitmap(src image.Image, targetHeight int) image.Image
}

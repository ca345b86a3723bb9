package skinforge

import (
	"image"
	"image/png"
	"io"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
)

// scaled returns the buffer's raster upscaled by the integer factor scale
// using nearest-neighbor resampling, which keeps pixel art crisp. scale <= 1
// returns the raster as-is.
func (b *Buffer) scaled(scale int) image.Image {
	if scale <= 1 {
		return b.img
	}

	bounds := b.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	gift.Resize(bounds.Dx()*scale, bounds.Dy()*scale, gift.NearestNeighborResampling).
		Draw(out, b.img, &gift.Options{Parallelization: false})
	return out
}

// EncodePNG writes the buffer as a PNG, upscaled by scale.
func (b *Buffer) EncodePNG(w io.Writer, scale int) error {
	return png.Encode(w, b.scaled(scale))
}

// EncodeBMP writes the buffer as a BMP, upscaled by scale. BMP has no alpha,
// so transparent pixels come out black.
func (b *Buffer) EncodeBMP(w io.Writer, scale int) error {
	return bmp.Encode(w, b.scaled(scale))
}

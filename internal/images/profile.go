package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const maxProfileDim = 512

// NormalizeProfileImage decodes an uploaded image (jpeg/png/webp),
// downscales it to fit 512px and re-encodes it as webp.
func NormalizeProfileImage(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxProfileDim || h > maxProfileDim {
		if w >= h {
			h = h * maxProfileDim / w
			w = maxProfileDim
		} else {
			w = w * maxProfileDim / h
			h = maxProfileDim
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

package tile

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// lanczos3 is a three-lobe windowed-sinc kernel for x/image's generic
// scaler. x/image ships Catmull-Rom as its widest kernel; the extra
// lobe keeps hard edges crisp at character-cell scale.
var lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t >= 3 {
			return 0
		}
		if t == 0 {
			return 1
		}
		pt := math.Pi * t
		return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
	},
}

func resample(m image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	lanczos3.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst
}

package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Boxes are [x0, y0, x1, y1] with both corners inclusive. All fills replace
// the destination pixel and are clipped to the image bounds.

// FillRect fills every pixel with x0 <= x <= x1 and y0 <= y <= y1.
func FillRect(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	r := image.Rect(x0, y0, x1+1, y1+1)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillEllipse fills the ellipse inscribed in the box. A pixel belongs to the
// ellipse when its centre lies inside it.
func FillEllipse(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	fillArc(img, x0, y0, x1, y1, 0, 360, c)
}

// FillPieslice fills the sector of the inscribed ellipse between start and
// end degrees, measured clockwise from 3 o'clock. When start > end the
// sector wraps through 0°.
func FillPieslice(img draw.Image, x0, y0, x1, y1 int, start, end float64, c color.Color) {
	fillArc(img, x0, y0, x1, y1, start, end, c)
}

func fillArc(img draw.Image, x0, y0, x1, y1 int, start, end float64, c color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	full := end-start >= 360
	start, end = normDeg(start), normDeg(end)

	cx := float64(x0+x1+1) / 2
	cy := float64(y0+y1+1) / 2
	rx := float64(x1-x0+1) / 2
	ry := float64(y1-y0+1) / 2

	area := image.Rect(x0, y0, x1+1, y1+1).Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			nx, ny := dx/rx, dy/ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			if !full && !inSector(angleOf(dx, dy), start, end) {
				continue
			}
			img.Set(x, y, c)
		}
	}
}

// angleOf returns the direction of (dx, dy) in degrees [0, 360), with y
// growing downwards so that 90° points to 6 o'clock.
func angleOf(dx, dy float64) float64 {
	return normDeg(math.Atan2(dy, dx) * 180 / math.Pi)
}

func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func inSector(a, start, end float64) bool {
	if start <= end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}

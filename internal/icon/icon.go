// Package icon draws the focus-timer app icon: a disc split blue/red with a
// clock face on top. Everything scales from a single pixel size.
package icon

import (
	"image"
	"image/color"
)

// Palette.
var (
	Blue     = color.RGBA{R: 74, G: 123, B: 169, A: 255} // #4a7ba9
	Red      = color.RGBA{R: 199, G: 68, B: 64, A: 255}  // #c74440
	DarkBlue = color.RGBA{R: 42, G: 74, B: 106, A: 255}  // #2a4a6a
	DarkRed  = color.RGBA{R: 182, G: 63, B: 59, A: 255}  // #b63f3b
	Face     = color.RGBA{R: 245, G: 235, B: 235, A: 255} // #f5ebeb
)

// Draw renders the icon on a transparent size×size canvas. The result is a
// pure function of size. Below roughly 10px the derived measurements
// collapse and the drawing degrades; that is accepted.
func Draw(size int) *image.RGBA {
	if size < 0 {
		size = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := size / 2
	pad := size / 20
	radius := size/2 - pad

	// Split background.
	FillPieslice(img, pad, pad, size-pad, size-pad, 90, 270, Blue)
	FillPieslice(img, pad, pad, size-pad, size-pad, 270, 90, Red)

	// Clock face.
	inner := int(float64(radius) * 0.83)
	FillEllipse(img, center-inner, center-inner, center+inner, center+inner, Face)

	// Markers at 12, 6, 3 and 9, flush with the face edge.
	markerLen := int(float64(radius) * 0.15)
	markerW := max(2, size/60)
	FillRect(img, center-markerW, center-inner, center+markerW, center-inner+markerLen, DarkBlue)
	FillRect(img, center-markerW, center+inner-markerLen, center+markerW, center+inner, DarkRed)
	FillRect(img, center+inner-markerLen, center-markerW, center+inner, center+markerW, Red)
	FillRect(img, center-inner, center-markerW, center-inner+markerLen, center+markerW, Blue)

	// Hour hand towards 3.
	handLen := int(float64(inner) * 0.4)
	handW := max(3, size/50)
	FillRect(img, center, center-handW, center+handLen, center+handW, Blue)

	// Minute hand towards 12.
	minLen := int(float64(inner) * 0.65)
	minW := max(2, size/70)
	FillRect(img, center-minW, center-minLen, center+minW, center, DarkBlue)

	dot := max(4, size/40)
	FillEllipse(img, center-dot, center-dot, center+dot, center+dot, DarkBlue)

	return img
}

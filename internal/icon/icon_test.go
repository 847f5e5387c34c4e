package icon

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var testSizes = []int{16, 30, 32, 44, 50, 64, 71, 89, 107, 128, 142, 150, 256, 284, 310, 512}

func TestDrawDimensions(t *testing.T) {
	for _, size := range testSizes {
		img := Draw(size)
		b := img.Bounds()
		if b.Min != (image.Point{}) || b.Dx() != size || b.Dy() != size {
			t.Errorf("Draw(%d) bounds = %v, want %dx%d at origin", size, b, size, size)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	for _, size := range testSizes {
		a, b := Draw(size), Draw(size)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Draw(%d) differs between calls", size)
		}
	}
}

func TestDrawSplitDisc(t *testing.T) {
	for _, size := range testSizes {
		if size < 40 {
			continue
		}
		img := Draw(size)
		center := size / 2
		pad := size / 20

		if got := img.RGBAAt(pad+2, center); got != Blue {
			t.Errorf("Draw(%d) left edge = %v, want blue %v", size, got, Blue)
		}
		if got := img.RGBAAt(size-pad-3, center); got != Red {
			t.Errorf("Draw(%d) right edge = %v, want red %v", size, got, Red)
		}
	}
}

func TestDrawCornersTransparent(t *testing.T) {
	for _, size := range testSizes {
		img := Draw(size)
		for _, p := range []image.Point{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
				t.Errorf("Draw(%d) corner %v alpha = %d, want 0", size, p, a)
			}
		}
	}
}

func TestDrawCenterDot(t *testing.T) {
	for _, size := range testSizes {
		img := Draw(size)
		if got := img.RGBAAt(size/2, size/2); got != DarkBlue {
			t.Errorf("Draw(%d) center = %v, want %v", size, got, DarkBlue)
		}
	}
}

func TestDrawClockDetails(t *testing.T) {
	const size = 512
	img := Draw(size)
	center := size / 2
	radius := size/2 - size/20
	inner := int(float64(radius) * 0.83)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"face", center, center + inner/2, Face},
		{"hour hand", center + int(float64(inner)*0.4)/2 + 20, center, Blue},
		{"minute hand", center, center - int(float64(inner)*0.65)/2, DarkBlue},
		{"12 marker", center, center - inner + 1, DarkBlue},
		{"6 marker", center, center + inner - 1, DarkRed},
		{"3 marker", center + inner - 1, center, Red},
		{"9 marker", center - inner + 1, center, Blue},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawTinySizesDoNotPanic(t *testing.T) {
	for _, size := range []int{0, 1, 2, 5, 9} {
		img := Draw(size)
		if img.Bounds().Dx() != size {
			t.Errorf("Draw(%d) width = %d", size, img.Bounds().Dx())
		}
	}
}

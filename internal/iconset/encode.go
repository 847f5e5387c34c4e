package iconset

import (
	"fmt"
	"image"
	"image/png"
	"io"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/focusicons/internal/icon"
)

// EncodePNG renders the icon at size and writes it to w as PNG.
func EncodePNG(w io.Writer, size int) error {
	return png.Encode(w, icon.Draw(size))
}

// EncodeICO renders one frame per size and writes them to w as a single ICO
// container, in the given order.
func EncodeICO(w io.Writer, sizes []int) error {
	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		frames = append(frames, icon.Draw(s))
	}
	if err := ico.EncodeAll(w, frames); err != nil {
		return fmt.Errorf("encoding ico: %w", err)
	}
	return nil
}

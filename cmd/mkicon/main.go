// mkicon renders the focus-timer app icons into src-tauri/icons: every PNG
// size the Tauri bundle expects plus a multi-resolution icon.ico.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Mavwarf/focusicons/internal/iconset"
	"github.com/Mavwarf/focusicons/internal/paths"
)

func main() {
	e := &iconset.Exporter{
		Dir:   paths.IconDir,
		Out:   os.Stdout,
		Color: useColor(os.Stdout),
	}
	if err := e.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mkicon: %v\n", err)
		os.Exit(1)
	}
}

// useColor reports whether f is a terminal and NO_COLOR is unset.
func useColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

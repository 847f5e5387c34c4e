// Package iconset renders the app icon at every size a Tauri bundle needs and
// writes the PNGs plus a multi-resolution icon.ico.
package iconset

import "github.com/Mavwarf/focusicons/internal/paths"

// Target is one PNG output file.
type Target struct {
	Name string
	Size int
}

// Targets lists the PNG outputs in write order.
var Targets = []Target{
	{"icon.png", 512},
	{"32x32.png", 32},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"Square30x30Logo.png", 30},
	{"Square44x44Logo.png", 44},
	{"Square71x71Logo.png", 71},
	{"Square89x89Logo.png", 89},
	{"Square107x107Logo.png", 107},
	{"Square142x142Logo.png", 142},
	{"Square150x150Logo.png", 150},
	{"Square284x284Logo.png", 284},
	{"Square310x310Logo.png", 310},
	{"StoreLogo.png", 50},
}

// ICOSizes are the frames embedded in icon.ico, smallest first.
var ICOSizes = []int{16, 32, 48, 64, 128, 256}

// Files returns every file name a run produces.
func Files() []string {
	names := make([]string, 0, len(Targets)+1)
	for _, t := range Targets {
		names = append(names, t.Name)
	}
	return append(names, paths.ICOName)
}

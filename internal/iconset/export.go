package iconset

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Mavwarf/focusicons/internal/paths"
)

// Exporter writes the full icon set into Dir and reports progress on Out.
type Exporter struct {
	Dir   string
	Out   io.Writer
	Color bool // wrap the success mark in ANSI green
}

// Run renders and writes every Target, then icon.ico. The first failure
// aborts the run; files written before it are left in place.
func (e *Exporter) Run() error {
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	if err := os.MkdirAll(e.Dir, paths.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", e.Dir, err)
	}

	fmt.Fprintln(out, "Generating icons...")
	for _, t := range Targets {
		p, err := e.writePNG(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  Created %s (%dx%d)\n", p, t.Size, t.Size)
	}

	fmt.Fprintf(out, "Generating %s...\n", paths.ICOName)
	if err := e.writeICO(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s All icons generated successfully!\n", e.ansi("\033[32m", "✓"))
	fmt.Fprintf(out, "  Location: %s/\n", e.Dir)
	return nil
}

func (e *Exporter) writePNG(t Target) (string, error) {
	p := paths.IconPath(e.Dir, t.Name)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, t.Size); err != nil {
		return "", fmt.Errorf("encoding %s: %w", t.Name, err)
	}
	if err := paths.AtomicWrite(p, buf.Bytes()); err != nil {
		return "", fmt.Errorf("writing %s: %w", p, err)
	}
	return p, nil
}

func (e *Exporter) writeICO() error {
	p := paths.IconPath(e.Dir, paths.ICOName)
	var buf bytes.Buffer
	if err := EncodeICO(&buf, ICOSizes); err != nil {
		return err
	}
	if err := paths.AtomicWrite(p, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

func (e *Exporter) ansi(code, s string) string {
	if !e.Color {
		return s
	}
	return code + s + "\033[0m"
}

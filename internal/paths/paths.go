package paths

import (
	"os"
	"path/filepath"
)

const (
	IconDir  = "src-tauri/icons"
	ICOName  = "icon.ico"
	DirPerm  = 0755
	FilePerm = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// IconPath joins the icon directory and a file name the way progress output
// reports it.
func IconPath(dir, name string) string {
	return filepath.Join(dir, name)
}

package sdkgen

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// zipEpoch is stamped on every archive entry so archives of equal packages
// are byte-identical.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteDir writes files below dir, creating directories as needed.
func WriteDir(dir string, files []File) error {
	for _, f := range files {
		if err := checkRelPath(f.Path); err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
	}
	return nil
}

// WriteZip writes files into a zip archive on w, each under root/.
func WriteZip(w io.Writer, root string, files []File) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		if err := checkRelPath(f.Path); err != nil {
			return err
		}
		hdr := &zip.FileHeader{
			Name:     path.Join(root, f.Path),
			Method:   zip.Deflate,
			Modified: zipEpoch,
		}
		hdr.SetMode(0o644)
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("adding %s: %w", hdr.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("writing %s: %w", hdr.Name, err)
		}
	}
	return zw.Close()
}

// checkRelPath keeps generated paths inside the package root.
func checkRelPath(p string) error {
	clean := path.Clean(p)
	if p == "" || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("refusing to write outside the package root: %q", p)
	}
	return nil
}

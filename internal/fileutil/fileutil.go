// Package fileutil provides the filesystem helpers shared by the watermark
// pipeline: collision-safe output naming, extension fixup and input selection.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxPathAttempts bounds the collision-avoidance loop in NextFreePath so a
// directory stuffed with suffixed files cannot make it spin forever.
const maxPathAttempts = 10000

// ErrTooManyAttempts is returned by NextFreePath once every candidate name up
// to the attempt limit turned out to be taken.
var ErrTooManyAttempts = errors.New("no free file name found")

// NextFreePath returns path if no filesystem entry exists there. Otherwise it
// probes path with an incrementing numeric suffix inserted before the
// extension (name_1.pdf, name_2.pdf, ...) and returns the first candidate not
// present at call time. The returned path is not created or reserved.
func NextFreePath(path string) (string, error) {
	if !exists(path) {
		return path, nil
	}
	ext := filepath.Ext(path)
	stem := path[:len(path)-len(ext)]
	for i := 1; i <= maxPathAttempts; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %s after %d attempts", ErrTooManyAttempts, path, maxPathAttempts)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsurePDFExtension replaces any extension of path with ".pdf", or appends
// it when path has none.
func EnsurePDFExtension(path string) string {
	if ext := filepath.Ext(path); ext != ".pdf" {
		return path[:len(path)-len(ext)] + ".pdf"
	}
	return path
}

// SelectInputs chooses the PDF files a run will process. An empty explicit
// list falls back to every *.pdf in dir. Files whose base name appears in
// excludeNames are skipped in either mode.
func SelectInputs(dir string, explicit, excludeNames []string) ([]string, error) {
	paths := explicit
	if len(paths) == 0 {
		var err error
		paths, err = filepath.Glob(filepath.Join(dir, "*.pdf"))
		if err != nil {
			return nil, fmt.Errorf("scanning %s for PDF files: %w", dir, err)
		}
	}
	skip := make(map[string]bool, len(excludeNames))
	for _, name := range excludeNames {
		skip[name] = true
	}
	selected := make([]string, 0, len(paths))
	for _, p := range paths {
		if !skip[filepath.Base(p)] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// CopyFile copies the file at src to dst, truncating dst if it exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

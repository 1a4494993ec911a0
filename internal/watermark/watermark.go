// Package watermark renders short text strings into watermark PDF documents
// and stamps them onto the pages of existing PDF files.
package watermark

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfwatermark/internal/fileutil"
)

//go:embed assets/blank_a4.pdf assets/empty.pdf
var assetsFS embed.FS

const (
	blankAssetPath = "assets/blank_a4.pdf"
	emptyAssetPath = "assets/empty.pdf"
)

// MaxTextLength is the exclusive upper bound on the watermark text length,
// counted in characters including spaces.
const MaxTextLength = 28

// ErrTextTooLong reports watermark text at or over MaxTextLength.
var ErrTextTooLong = errors.New("watermark text too long")

// Dimensions of the A4 seed page in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// The text baseline is centered at (500, 100) inside the 45 degree rotated
// frame. The stamp engine anchors at the page center instead, so that point
// is expressed as an offset from the center of the seed page.
const (
	anchorX = 500.0
	anchorY = 100.0

	offsetX = (anchorX-anchorY)/math.Sqrt2 - pageWidth/2
	offsetY = (anchorX+anchorY)/math.Sqrt2 - pageHeight/2
)

func renderDesc() string {
	return fmt.Sprintf(
		"fontname:Helvetica, points:50, scalefactor:1 abs, position:c, offset:%.2f %.2f, rotation:45, opacity:0.6, fillcolor:#808080",
		offsetX, offsetY)
}

// Render writes a single-page A4 PDF with text drawn across it: Helvetica at
// 50 points, gray at 60% opacity, rotated 45 degrees. An empty outPath
// allocates a fresh file in the OS temp directory; any other extension than
// .pdf is rewritten. Returns the path of the written watermark document.
func Render(text, outPath string) (string, error) {
	if n := utf8.RuneCountInString(text); n >= MaxTextLength {
		return "", fmt.Errorf("%w: %d characters, fewer than %d required", ErrTextTooLong, n, MaxTextLength)
	}
	if outPath == "" {
		outPath = tempPDFPath("watermark_" + text + "_")
	}
	outPath = fileutil.EnsurePDFExtension(outPath)

	seed, err := writeSeedPage()
	if err != nil {
		return "", err
	}
	defer os.Remove(seed)

	wm, err := api.TextWatermark(text, renderDesc(), true, false, types.POINTS)
	if err != nil {
		return "", fmt.Errorf("building text watermark: %w", err)
	}
	if err := api.AddWatermarksFile(seed, outPath, nil, wm, nil); err != nil {
		return "", fmt.Errorf("drawing watermark text: %w", err)
	}
	return outPath, nil
}

// writeSeedPage copies the embedded blank A4 page into a temporary file and
// returns its path. The caller removes the file when done.
func writeSeedPage() (string, error) {
	data, err := assetsFS.ReadFile(blankAssetPath)
	if err != nil {
		return "", fmt.Errorf("reading embedded seed page: %w", err)
	}
	f, err := os.CreateTemp("", "blank-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temporary seed file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing temporary seed file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing temporary seed file: %w", err)
	}
	return f.Name(), nil
}

// tempPDFPath returns a fresh path in the OS temp directory carrying prefix
// and a unique suffix. Path separators in the prefix are flattened so caller
// supplied text cannot escape the directory.
func tempPDFPath(prefix string) string {
	prefix = strings.NewReplacer("/", "_", "\\", "_").Replace(prefix)
	return filepath.Join(os.TempDir(), prefix+uuid.NewString()[:8]+".pdf")
}

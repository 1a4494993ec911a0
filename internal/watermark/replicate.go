package watermark

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfwatermark/internal/fileutil"
)

// Replicate writes a new PDF document repeating the first page of the
// document at wmPath pageCount times. Pages beyond the first are ignored.
// A pageCount of zero yields a valid zero-page document. An empty outPath
// allocates a fresh file in the OS temp directory; any other extension than
// .pdf is rewritten. Returns the path of the written document.
func Replicate(wmPath string, pageCount int, outPath string) (string, error) {
	if pageCount < 0 {
		return "", fmt.Errorf("page count must not be negative, got %d", pageCount)
	}
	if outPath == "" {
		outPath = tempPDFPath("watermark_tmp_")
	}
	outPath = fileutil.EnsurePDFExtension(outPath)

	if pageCount == 0 {
		data, err := assetsFS.ReadFile(emptyAssetPath)
		if err != nil {
			return "", fmt.Errorf("reading embedded empty document: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return "", fmt.Errorf("writing empty document: %w", err)
		}
		return outPath, nil
	}

	pages := make([]string, pageCount)
	for i := range pages {
		pages[i] = "1"
	}
	if err := api.CollectFile(wmPath, outPath, pages, nil); err != nil {
		return "", fmt.Errorf("replicating watermark page: %w", err)
	}
	return outPath, nil
}

package watermark

import (
	"fmt"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfwatermark/internal/fileutil"
)

// outputSuffix is inserted between the base name of an input file and the
// .pdf extension of its output file.
const outputSuffix = "_watermarked"

// mergeDesc places a watermark page onto a content page unscaled and
// unrotated, anchored at the lower left corner, with the watermark's own
// opacity left untouched.
const mergeDesc = "position:bl, offset:0 0, scalefactor:1 abs, rotation:0, opacity:1"

// Merge overlays the pages of the watermark document at wmPath onto the
// pages of the PDF at inputPath, page by page, flattening the watermark
// graphics on top of the existing content. The watermark document is first
// replicated to match the input's page count, so only its first page
// matters. The result is written next to the input under a collision-safe
// name derived by appending "_watermarked"; the input file itself is never
// modified. Returns the path of the written output.
func Merge(inputPath, wmPath string) (string, error) {
	stem := inputPath[:len(inputPath)-len(filepath.Ext(inputPath))]
	outPath, err := fileutil.NextFreePath(stem + outputSuffix + ".pdf")
	if err != nil {
		return "", err
	}

	ctx, err := api.ReadContextFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", inputPath, err)
	}

	// A zero-page input still produces an output document.
	if ctx.PageCount == 0 {
		if err := fileutil.CopyFile(inputPath, outPath); err != nil {
			return "", fmt.Errorf("writing zero-page output: %w", err)
		}
		return outPath, nil
	}

	// The replicated document stays behind in the temp directory, like
	// every other intermediate watermark artifact of a run.
	replicated, err := Replicate(wmPath, ctx.PageCount, "")
	if err != nil {
		return "", err
	}

	stamps := make(map[int]*model.Watermark, ctx.PageCount)
	for i := 1; i <= ctx.PageCount; i++ {
		wm, err := api.PDFWatermark(fmt.Sprintf("%s:%d", replicated, i), mergeDesc, true, false, types.POINTS)
		if err != nil {
			return "", fmt.Errorf("preparing watermark for page %d: %w", i, err)
		}
		stamps[i] = wm
	}
	if err := api.AddWatermarksMapFile(inputPath, outPath, stamps, nil); err != nil {
		return "", fmt.Errorf("merging watermark onto %s: %w", inputPath, err)
	}
	return outPath, nil
}

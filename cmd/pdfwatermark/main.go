// Command pdfwatermark stamps a diagonal text watermark onto every page of
// one or more PDF files. Each input name.pdf yields a name_watermarked.pdf
// next to it; existing outputs are never overwritten.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"pdfwatermark/internal/fileutil"
	"pdfwatermark/internal/watermark"
)

var verbose bool

func logf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

// stringList collects repeated flag values; a single occurrence may also
// carry several comma-separated values.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

func main() {
	var inputFiles, excludes stringList
	flag.Var(&inputFiles, "f", "input PDF `file` to process, repeatable (default: every *.pdf in the working directory)")
	flag.Var(&inputFiles, "input_files", "alias for -f")
	flag.Var(&excludes, "x", "file `name` to skip, repeatable")
	flag.Var(&excludes, "exclude", "alias for -x")
	verbosePtr := flag.Bool("v", false, "Enable debug output.")
	flag.Usage = usage
	flag.Parse()

	verbose = *verbosePtr

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), inputFiles, excludes); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(text string, inputFiles, excludes []string) error {
	files, err := fileutil.SelectInputs(".", inputFiles, excludes)
	if err != nil {
		return err
	}

	// One watermark document is rendered per run and shared, read-only,
	// across all input files. The text length check runs before any file
	// is touched.
	wmPath, err := watermark.Render(text, "")
	if err != nil {
		return err
	}
	logf("Created watermark document: %s", wmPath)

	failed := 0
	for _, f := range files {
		log.Printf("Processing file: %s", f)
		out, err := watermark.Merge(f, wmPath)
		if err != nil {
			log.Printf("Error processing %s: %v", f, err)
			failed++
			continue
		}
		logf("Wrote %s", out)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	log.Println("All done!")
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] watermark_text\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "Stamps watermark_text (fewer than %d characters) diagonally onto every page of the selected PDF files.\n\nOptions:\n", watermark.MaxTextLength)
	flag.PrintDefaults()
}

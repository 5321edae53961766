package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/burst-archive/burstcheck/verify"
	"github.com/dustin/go-humanize"
	"github.com/mitchellh/colorstring"
)

// reporter renders a verification report for humans.
//
// Coloring is a property of the reporter value, never global state, so tests
// and --no-color runs get byte-identical uncolored output.
type reporter struct {
	w       io.Writer
	colors  colorstring.Colorize
	verbose bool
}

func newReporter(w io.Writer, useColor, verbose bool) *reporter {
	return &reporter{
		w: w,
		colors: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !useColor,
			Reset:   true,
		},
		verbose: verbose,
	}
}

// printf colorizes the format string (the args are substituted afterwards so
// verdict reasons can never be mistaken for color tags).
func (r *reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, r.colors.Color(format), args...)
}

func (r *reporter) Print(name string, data []byte, rep verify.Report) {
	r.printf("[blue]=== BURST Archive Alignment Verification ===\n")
	r.printf("Archive: %s\n", name)
	r.printf("File size: %s (%s bytes)\n", humanize.IBytes(uint64(rep.FileSize)), humanize.Comma(rep.FileSize))

	if rep.CD.Found {
		r.printf("Central directory starts at: %#x (%s)\n", rep.CD.Offset, humanize.IBytes(uint64(rep.CD.Offset)))
	} else {
		r.printf("[yellow]Warning: could not locate central directory\n")
	}
	r.printf("\n")

	n := len(rep.Boundaries)
	if n == 0 {
		r.printf("[yellow]No 8 MiB boundaries to check (file smaller than 8 MiB)\n")
		return
	}

	word := "boundaries"
	if n == 1 {
		word = "boundary"
	}
	r.printf("Checking %d %s:\n\n", n, word)

	for _, b := range rep.Boundaries {
		mark := "[green]\u2713[reset]"
		if !b.Verdict.OK() {
			mark = "[red]\u2717[reset]"
		}

		r.printf(mark+" Boundary %d at %#x (%d MiB): %s\n", b.Index, b.Offset, b.Offset/(1024*1024), b.Verdict.Reason)

		if b.Verdict.HasDetail {
			r.printf("  Uncompressed offset: %#x\n", b.Verdict.UncompressedOffset)
		}
		if r.verbose {
			r.printf("  Hex dump: %s\n", hexDump(data, b.Offset, 16))
		}
		if r.verbose || !b.Verdict.OK() {
			r.printf("\n")
		}
	}

	r.printf("[blue]=== Summary ===\n")
	r.printf("Total boundaries checked: %d\n", n)
	r.printf("[green]Passed: %d\n", rep.Passed)

	if rep.Violations > 0 {
		r.printf("[red]Failed: %d\n", rep.Violations)
		r.printf("\n")
		r.printf("[red]\u2717 Alignment verification failed!\n")
		r.printf("One or more 8 MiB boundaries do not align to frame/header starts.\n")
		return
	}

	r.printf("\n")
	r.printf("[green]\u2713 All boundaries properly aligned!\n")
	r.printf("This archive complies with the BURST alignment requirement.\n")
}

// hexDump formats up to n bytes at offset as space-separated hex pairs,
// stopping at end of data.
func hexDump(data []byte, offset int64, n int) string {
	if offset < 0 || offset >= int64(len(data)) {
		return ""
	}

	end := min(offset+int64(n), int64(len(data)))
	pairs := make([]string, 0, n)
	for _, b := range data[offset:end] {
		pairs = append(pairs, fmt.Sprintf("%02x", b))
	}

	return strings.Join(pairs, " ")
}

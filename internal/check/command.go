package check

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/burst-archive/burstcheck/verify"
	"github.com/jessevdk/go-flags"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Command verifies the partition alignment of a single BURST archive.
type Command struct {
	Verbose bool `short:"v" long:"verbose" description:"show hex dumps and decoded frame fields at each boundary"`
	NoColor bool `long:"no-color" description:"disable colored output"`
	Args    struct {
		File flags.Filename `positional-arg-name:"file" description:"the archive to verify" required:"yes"`
	} `positional-args:"yes"`
}

func (c *Command) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	name := string(c.Args.File)

	data, err := readArchive(name)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	rep := verify.Scan(data, func(opts *verify.ScanOptions) {
		opts.Detail = c.Verbose
	})

	useColor := !c.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	newReporter(os.Stdout, useColor, c.Verbose).Print(name, data, rep)

	if rep.Violations > 0 {
		return &ExitError{Code: rep.Violations}
	}

	return nil
}

// readArchive materializes the entire archive in memory. BURST archives are
// routinely multiple GiB so a byte progress bar on stderr shows the read.
func readArchive(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open archive error: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat archive error: %w", err)
	}

	bar := progressbar.NewOptions64(fi.Size(),
		progressbar.OptionSetDescription("reading archive"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(1*time.Second),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth())

	buf := bytes.NewBuffer(make([]byte, 0, fi.Size()))
	if _, err = io.Copy(io.MultiWriter(buf, bar), f); err != nil {
		return nil, fmt.Errorf("read archive error: %w", err)
	}
	_ = bar.Close()

	return buf.Bytes(), nil
}

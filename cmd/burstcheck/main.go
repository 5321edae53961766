package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/burst-archive/burstcheck/internal/check"
	"github.com/jessevdk/go-flags"
)

var opts check.Command

func main() {
	p := flags.NewParser(&opts, flags.Default)
	p.Usage = "[OPTIONS] file"

	rest, err := p.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			exit(0)
		}
		exit(1)
	}

	switch err = opts.Execute(rest); {
	case err == nil:
		exit(0)
	default:
		var xerr *check.ExitError
		if errors.As(err, &xerr) {
			if xerr.Err != nil {
				_, _ = fmt.Fprintln(os.Stderr, xerr.Err)
			}
			exit(xerr.Code)
		}

		_, _ = fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}

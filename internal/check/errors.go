package check

import "fmt"

// ExitError carries the process exit code from a command back to main.
//
// A verification run that finds violations exits with the violation count;
// I/O failures exit with 1. Err, when non-nil, is the underlying cause to be
// printed before exiting.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exit code %d, cause: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

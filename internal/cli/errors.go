package cli

import "fmt"

// ExitError carries the process exit code a command wants. Err, when set,
// is printed by main; a nil Err means the command already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

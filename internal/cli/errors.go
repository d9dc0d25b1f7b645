package cli

import "errors"

// UsageError marks a failure caused by the command line itself (an
// unparseable or out-of-range flag value, wrong arguments) rather than by
// the run. The two classes map to distinct exit statuses.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Exit statuses: argument-validation failures exit 2, runtime failures
// (missing file, unsupported or malformed image) exit 1.
const (
	exitRuntime = 1
	exitUsage   = 2
)

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitRuntime
}

package cli

import "errors"

// Exit codes for oxinot-preview.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRenderError indicates the render pipeline failed.
	ExitRenderError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitThemeError indicates theme file errors.
	ExitThemeError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// exitError attaches a process exit code to its cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCode maps an error returned by Execute to a process exit code.
// Unclassified failures fall back to ExitRenderError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitRenderError
}

package renderer

import "fmt"

// SetupError is a fatal failure while bringing a subsystem up (or
// recreating it on resize).
type SetupError struct {
	Subsystem string
	Err       error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s setup failed: %v", e.Subsystem, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

func setupErr(subsystem string, err error) error {
	if err == nil {
		return nil
	}
	return &SetupError{Subsystem: subsystem, Err: err}
}

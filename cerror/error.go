package cerror

import "fmt"

type CorridorError struct {
	Err string
}

// New returns a formatted corridor error.
func New(format string, args ...any) *CorridorError {
	return &CorridorError{Err: fmt.Sprintf(format, args...)}
}

func (e *CorridorError) Error() string {
	return e.Err
}

package extract

import "fmt"

// ExtractionError indicates that an uploaded buffer could not be converted to
// text. It carries a short machine-readable reason plus the underlying decoder
// error. It is the only error kind this package produces.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extraction failed: %s", e.Reason)
	}
	return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

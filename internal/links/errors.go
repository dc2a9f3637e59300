package links

import "fmt"

// OpenError reports a URL the platform could not open.
type OpenError struct {
	URL     string
	Message string
	Cause   error
}

func (e *OpenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("open %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("open %s: %s", e.URL, e.Message)
}

func (e *OpenError) Unwrap() error {
	return e.Cause
}

package catalog

import "fmt"

// IntegrityError reports a seed document that cannot be wired into a
// consistent content graph. Path locates the offending record.
type IntegrityError struct {
	Path    string
	Message string
	Cause   error
}

func (e *IntegrityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("integrity error at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("integrity error at %s: %s", e.Path, e.Message)
}

func (e *IntegrityError) Unwrap() error {
	return e.Cause
}

// LookupError reports a highlight query that matched zero or several highlights.
type LookupError struct {
	Query   string
	Matches int
}

func (e *LookupError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no highlight matches %q", e.Query)
	}
	return fmt.Sprintf("highlight id %q is ambiguous (%d matches)", e.Query, e.Matches)
}

package growthref

import "fmt"

// LookupError carries the collaborator's own failure code and message,
// propagated verbatim so the caller can diagnose the underlying data issue.
type LookupError struct {
	Code    int
	Message string
}

func (e *LookupError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("reference lookup failed: code=%d message=%s", e.Code, e.Message)
	}
	return fmt.Sprintf("reference lookup failed: code=%d", e.Code)
}

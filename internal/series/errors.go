package series

import "fmt"

// RowError identifies which input row failed enrichment and wraps the
// collaborator's error unchanged.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

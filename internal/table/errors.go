package table

import "fmt"

// ErrEmptyTable indicates the input parsed to zero data rows.
var ErrEmptyTable = fmt.Errorf("table has no data rows")

// MissingRoleError indicates a required semantic column could not be resolved
// from the header names.
type MissingRoleError struct {
	Role string
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("no column matches required role %q", e.Role)
}

// MalformedDateError indicates a date cell did not start with YYYY-MM-DD.
type MalformedDateError struct {
	Row int
	Raw string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("row %d: malformed date %q (want YYYY-MM-DD)", e.Row, e.Raw)
}

package model

import "fmt"

// InvalidPlayerDataError reports a player record that failed validation.
// Row is the 1-based data row of the source, or 0 when not loaded from a table.
type InvalidPlayerDataError struct {
	Row    int
	Name   string
	Field  string
	Value  string
	Reason string
}

func (e *InvalidPlayerDataError) Error() string {
	who := e.Name
	if who == "" {
		who = "<unnamed>"
	}
	if e.Row > 0 {
		return fmt.Sprintf("row %d (%s): invalid %s %q: %s", e.Row, who, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("player %s: invalid %s %q: %s", who, e.Field, e.Value, e.Reason)
}

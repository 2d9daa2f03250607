/*
Package softwarelog persists service diagnostics as rows, so operators
can query the station's own software history alongside the catalog.

Rows are written by the platform/dblog slog handler, never directly by
domain code.
*/
package softwarelog

import (
	"context"
	"time"
)

// Entry is one persisted log record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Tag       string    `json:"tag"`
	Level     string    `json:"level"`
	Filename  string    `json:"filename"`
	LineNum   int       `json:"line_num"`
	Message   string    `json:"message"`
}

// Repository stores log entries. Append-only; pruning is an operator
// concern handled outside the service.
type Repository interface {
	CreateEntry(context context.Context, e *Entry) error
	ListEntries(context context.Context, tag string, since time.Time, limit int) ([]*Entry, error)
}

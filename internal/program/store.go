package program

import (
	"context"
	"time"
)

// Repository is the storage surface for the scheduling entities. Formats
// cascade to programs and log entries on delete; slots and quarters are
// free-standing rows.
type Repository interface {
	ListFormats(context context.Context) ([]*Format, error)
	GetFormat(context context.Context, formatType string) (*Format, error)
	CreateFormat(context context.Context, f *Format) error
	UpdateFormat(context context.Context, f *Format) error
	DeleteFormat(context context.Context, formatType string) error

	ListPrograms(context context.Context, formatType string) ([]*Program, error)
	CreateProgram(context context.Context, p *Program) error
	DeleteProgram(context context.Context, formatType, name string) error

	ListSlots(context context.Context) ([]*Slot, error)
	CreateSlot(context context.Context, s *Slot) error
	DeleteSlot(context context.Context, id int) error

	ListLogEntries(context context.Context, formatType string, since time.Time) ([]*LogEntry, error)
	CreateLogEntry(context context.Context, e *LogEntry) error

	ListQuarters(context context.Context) ([]*Quarter, error)
	CreateQuarter(context context.Context, q *Quarter) error
	DeleteQuarter(context context.Context, id int) error
}

// DJDirectory vouches for the DJ named in a log entry; the dj_id column
// carries no structural constraint. Implemented by the dj package's
// repository.
type DJDirectory interface {
	DJExists(context context.Context, id string) (bool, error)
}

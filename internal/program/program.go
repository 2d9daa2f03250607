/*
Package program covers the station's broadcast scheduling entities.

Unlike the catalog, nothing here derives composite identifiers: program
formats are keyed by their type string, programs by format plus name, and
slots by a plain serial id. Log entries reference the DJ who held the
slot the same soft way album annotations do.
*/
package program

import "time"

// Format is a broadcast format ("talk", "rotation", "specialty").
// Deleting a format cascades to its programs and log entries.
type Format struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Program is a named show within a format.
type Program struct {
	FormatType string `json:"format_type"`
	Name       string `json:"name"`
}

// Slot is a weekly schedule position. Day is 0 (Monday) through 6.
type Slot struct {
	ID    int    `json:"id"`
	Day   int    `json:"day"`
	Start string `json:"start"`
}

// LogEntry records who actually held a slot and what aired.
type LogEntry struct {
	FormatType  string    `json:"format_type"`
	SlotID      int       `json:"slot_id"`
	Timestamp   time.Time `json:"timestamp"`
	ProgramName string    `json:"program_name"`
	DJID        string    `json:"dj_id"`
}

// Quarter is a broadcast quarter with its date bounds.
type Quarter struct {
	ID    int       `json:"id"`
	Begin time.Time `json:"begin"`
	End   time.Time `json:"end"`
}

const (
	FieldType        = "type"
	FieldDescription = "description"
	FieldName        = "name"
	FieldDay         = "day"
	FieldStart       = "start"
	FieldDJID        = "dj_id"
)

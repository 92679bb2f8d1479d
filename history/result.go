package history

import (
	"time"
)

// Outcome says what an operation did to its files.
type Outcome int

const (
	// NoOp means there was nothing to do and nothing was written.
	NoOp Outcome = iota
	// FirstRun means the log was empty and the snapshot started it.
	FirstRun
	// Unchanged means the constituents match the last snapshot; the log was not written.
	Unchanged
	// Changed means a new snapshot was appended.
	Changed
	// Written means the output file was rewritten.
	Written
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "no-op"
	case FirstRun:
		return "first run"
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	case Written:
		return "written"
	}
	return "unknown"
}

// AppendResult reports what the change detector did.
type AppendResult struct {
	Outcome Outcome
	Since   time.Time // date of the last entry when Outcome is Unchanged
	Date    time.Time // date of the appended snapshot otherwise
	Records int       // entries in the log afterwards
}

// CompactResult reports what the compactor did.
type CompactResult struct {
	Outcome    Outcome
	Original   int
	Retained   int
	Removed    int
	BackupFile string
}

// NormalizeResult reports what the normalizer did.
type NormalizeResult struct {
	Outcome           Outcome
	Renamed           int // symbols rewritten through the mapping
	Deleted           int // symbols dropped by the deletion set
	Collapsed         int // symbols that duplicated another in the same entry
	EmptyDropped      int // entries left with no symbols
	DuplicatesRemoved int // entries identical to an earlier one
	Records           int // entries written
	OutputFile        string
	Issues            []string
}

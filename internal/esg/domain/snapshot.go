package domain

import "fmt"

type SnapshotKind string

const (
	SnapshotKindCurrent  SnapshotKind = "current"
	SnapshotKindHistoric SnapshotKind = "historic"
)

func ParseSnapshotKind(raw string) (SnapshotKind, error) {
	switch raw {
	case "current":
		return SnapshotKindCurrent, nil
	case "historic":
		return SnapshotKindHistoric, nil
	default:
		return "", fmt.Errorf("unknown snapshot kind: %q", raw)
	}
}

type SnapshotEntry struct {
	Value           string
	ReportingPeriod string
}

// Snapshot is a read-only view of previously stored values keyed by field
// name. The engine never mutates it; it only serves as a seed and display
// source.
type Snapshot map[string]SnapshotEntry

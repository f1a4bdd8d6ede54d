package usecases

import (
	"esg-server/internal/esg/domain"
)

// ValueStore holds the working values and KPI flags of a single form session
// together with the latest snapshots fetched for it. It is not safe for
// concurrent use; FormSession serializes access to it.
type ValueStore struct {
	values    map[string]any
	kpiFlags  map[string]bool
	snapshots map[domain.SnapshotKind]domain.Snapshot
	seeded    bool
}

func NewValueStore() *ValueStore {
	return &ValueStore{
		values:    make(map[string]any),
		kpiFlags:  make(map[string]bool),
		snapshots: make(map[domain.SnapshotKind]domain.Snapshot),
	}
}

// SetValue records a working value, overwriting any previous entry for the
// field including seeded ones.
func (vs *ValueStore) SetValue(field string, value any) {
	vs.values[field] = value
}

func (vs *ValueStore) SetKPIFlag(field string, flagged bool) {
	vs.kpiFlags[field] = flagged
}

// SeedFromSnapshot stores the snapshot for display and, for the current kind
// only, adopts its values into fields that have no working value yet. Adoption
// happens at most once per store until RearmSeeding is called, so repeated
// refreshes never clobber user edits.
func (vs *ValueStore) SeedFromSnapshot(kind domain.SnapshotKind, snapshot domain.Snapshot) {
	vs.snapshots[kind] = snapshot
	if kind != domain.SnapshotKindCurrent || vs.seeded {
		return
	}
	for field, entry := range snapshot {
		if entry.Value == "" {
			continue
		}
		if existing, ok := vs.values[field]; ok {
			if s, isString := existing.(string); !isString || s != "" {
				continue
			}
		}
		vs.values[field] = entry.Value
	}
	vs.seeded = true
}

// Clear drops all working values and KPI flags. Snapshots stay, and seeding is
// deliberately not re-armed so a refresh after a clear does not silently
// restore the values the user just discarded.
func (vs *ValueStore) Clear() {
	vs.values = make(map[string]any)
	vs.kpiFlags = make(map[string]bool)
}

// RearmSeeding allows the next current snapshot to adopt values again. Called
// after a successful submission so the refreshed snapshot repopulates the form.
func (vs *ValueStore) RearmSeeding() {
	vs.seeded = false
	vs.values = make(map[string]any)
	vs.kpiFlags = make(map[string]bool)
}

func (vs *ValueStore) Values() map[string]any {
	out := make(map[string]any, len(vs.values))
	for k, v := range vs.values {
		out[k] = v
	}
	return out
}

func (vs *ValueStore) KPIFlags() map[string]bool {
	out := make(map[string]bool, len(vs.kpiFlags))
	for k, v := range vs.kpiFlags {
		out[k] = v
	}
	return out
}

func (vs *ValueStore) Snapshot(kind domain.SnapshotKind) domain.Snapshot {
	snapshot, ok := vs.snapshots[kind]
	if !ok {
		return domain.Snapshot{}
	}
	out := make(domain.Snapshot, len(snapshot))
	for k, v := range snapshot {
		out[k] = v
	}
	return out
}

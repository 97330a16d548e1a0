package service

import (
	"sort"

	"github.com/lite-lake/hetznerdns/internal/domain/entity"
	"github.com/lite-lake/hetznerdns/internal/domain/valueobject"
)

// RecordChange is one line of a pull diff: what the snapshot must do to
// match the remote zone.
type RecordChange struct {
	Zone   string
	Type   entity.RecordType
	Name   string
	Value  string
	TTL    int
	Change valueobject.ChangeType
}

// DiffRecords compares the local snapshot of a zone against the records the
// API returned, with remote as the source of truth. Entries are keyed by
// type and name; value or TTL drift on a shared key becomes an update.
func DiffRecords(zone string, local, remote []entity.Record) []RecordChange {
	localByKey := make(map[string]*entity.Record, len(local))
	for i := range local {
		localByKey[local[i].Key()] = &local[i]
	}

	var changes []RecordChange
	for i := range remote {
		rec := &remote[i]
		existing, ok := localByKey[rec.Key()]
		if !ok {
			changes = append(changes, newChange(zone, rec, valueobject.ChangeTypeCreate))
			continue
		}
		if !existing.Equals(rec) {
			changes = append(changes, newChange(zone, rec, valueobject.ChangeTypeUpdate))
		}
		delete(localByKey, rec.Key())
	}

	for _, rec := range localByKey {
		changes = append(changes, newChange(zone, rec, valueobject.ChangeTypeDelete))
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Name != changes[j].Name {
			return changes[i].Name < changes[j].Name
		}
		return changes[i].Type < changes[j].Type
	})

	return changes
}

// ApplyChanges rewrites a zone's snapshot records with the given changes
// applied: creates and updates take the remote state, deletes drop the
// record. Records untouched by any change keep their position.
func ApplyChanges(local []entity.Record, changes []RecordChange) []entity.Record {
	drop := make(map[string]bool)
	replace := make(map[string]entity.Record)
	var added []entity.Record

	for _, ch := range changes {
		rec := entity.Record{Type: ch.Type, Name: ch.Name, Value: ch.Value, TTL: ch.TTL}
		switch ch.Change {
		case valueobject.ChangeTypeCreate:
			added = append(added, rec)
		case valueobject.ChangeTypeUpdate:
			replace[rec.Key()] = rec
		case valueobject.ChangeTypeDelete:
			drop[rec.Key()] = true
		}
	}

	result := make([]entity.Record, 0, len(local)+len(added))
	for i := range local {
		key := local[i].Key()
		if drop[key] {
			continue
		}
		if rec, ok := replace[key]; ok {
			result = append(result, rec)
			continue
		}
		result = append(result, local[i])
	}

	return append(result, added...)
}

func newChange(zone string, rec *entity.Record, ct valueobject.ChangeType) RecordChange {
	return RecordChange{
		Zone:   zone,
		Type:   rec.Type,
		Name:   rec.Name,
		Value:  rec.Value,
		TTL:    rec.TTL,
		Change: ct,
	}
}

// Package state persists pulled DNS records as a local YAML snapshot.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/hetznerdns/internal/domain"
	"github.com/lite-lake/hetznerdns/internal/domain/entity"
)

// Snapshot is the on-disk layout: every zone that has been pulled, with its
// records.
type Snapshot struct {
	Zones []entity.ZoneRecords `yaml:"zones"`
}

// Zone returns the snapshot entry for the named zone, or nil when the zone
// has never been pulled.
func (s *Snapshot) Zone(name string) *entity.ZoneRecords {
	for i := range s.Zones {
		if s.Zones[i].Name == name {
			return &s.Zones[i]
		}
	}
	return nil
}

// SetZone replaces the entry for zone.Name, appending when absent.
func (s *Snapshot) SetZone(zone entity.ZoneRecords) {
	for i := range s.Zones {
		if s.Zones[i].Name == zone.Name {
			s.Zones[i] = zone
			return
		}
	}
	s.Zones = append(s.Zones, zone)
}

// FileStore reads and writes the snapshot file. A sibling lock file
// serializes concurrent dnsops invocations, and writes go through a
// temporary file plus rename so a crash never leaves a half-written
// snapshot.
type FileStore struct {
	path  string
	flock *flock.Flock
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (s *FileStore) Load() (*Snapshot, error) {
	if err := s.flock.Lock(); err != nil {
		return nil, fmt.Errorf("acquiring lock for %s: %w", s.path, err)
	}
	defer s.flock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrSnapshotReadFailed, s.path, err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrSnapshotSerializeFail, s.path, err)
	}

	return &snap, nil
}

// Save writes the snapshot atomically.
func (s *FileStore) Save(snap *Snapshot) error {
	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", s.path, err)
	}
	defer s.flock.Unlock()

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: marshaling snapshot: %v", domain.ErrSnapshotSerializeFail, err)
	}

	tmpPath := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrSnapshotWriteFailed, tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming %s to %s: %v", domain.ErrSnapshotWriteFailed, tmpPath, s.path, err)
	}

	return nil
}

// Package catalog persists the authoritative venue catalog as a JSON
// document. Writes are transactional: the store reads the current catalog,
// merges in memory, snapshots the prior state, and atomically replaces the
// file. A crash mid-write never leaves a partially written catalog.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/venuehq/venuemap/pkg/errors"
	"github.com/venuehq/venuemap/pkg/logging"
	"github.com/venuehq/venuemap/pkg/venues"
)

// File and directory permissions for catalog artifacts.
const (
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// backupTimestampLayout names backup snapshots deterministically by time.
const backupTimestampLayout = "20060102_150405"

// Store reads and writes the catalog file.
type Store struct {
	path      string
	backupDir string
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithBackupDir overrides the backup snapshot directory. The default is a
// "backups" directory next to the catalog file.
func WithBackupDir(dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.backupDir = dir
		}
	}
}

// WithClock overrides the clock used for backup naming.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store for the catalog file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		backupDir: filepath.Join(filepath.Dir(path), "backups"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog document. A missing catalog file is not an error;
// it loads as an empty catalog.
func (s *Store) Load() ([]venues.Venue, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", s.path, err)
	}

	var doc venues.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapIO("read", s.path, err)
	}
	return doc.Venues, nil
}

// Write snapshots the current catalog state, then atomically replaces the
// catalog file with the given venues. The write goes to a temporary file in
// the same directory followed by a rename, so readers never observe a
// partial document.
func (s *Store) Write(records []venues.Venue) error {
	if backup, err := s.Backup(); err != nil {
		return err
	} else if backup != "" {
		logging.Debug().Str("backup", backup).Msg("Catalog snapshot written")
	}

	data, err := json.MarshalIndent(venues.Document{Venues: records}, "", "  ")
	if err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", s.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.WrapIO("rename", s.path, err)
	}
	return nil
}

// Backup copies the current catalog file into the backup directory, named
// deterministically by timestamp. It returns the backup path, or an empty
// string when there is no catalog file to snapshot yet.
func (s *Store) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.WrapIO("backup", s.path, err)
	}

	if err := os.MkdirAll(s.backupDir, dirPermissions); err != nil {
		return "", errors.WrapIO("backup", s.backupDir, err)
	}

	name := "venues_backup_" + s.now().Format(backupTimestampLayout) + ".json"
	backupPath := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(backupPath, data, filePermissions); err != nil {
		return "", errors.WrapIO("backup", backupPath, err)
	}
	return backupPath, nil
}

// Active returns the catalog's active view: records not marked as
// duplicates. Duplicates stay in the stored document for audit.
func Active(records []venues.Venue) []venues.Venue {
	active := make([]venues.Venue, 0, len(records))
	for _, v := range records {
		if v.Active() {
			active = append(active, v)
		}
	}
	return active
}

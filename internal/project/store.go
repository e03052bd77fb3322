package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Store is the opaque project persistence collaborator. Implementations own
// the durable copy; the editor session's in-memory state stays authoritative
// when a store call fails.
type Store interface {
	// List returns all stored projects sorted by LastModified descending
	List() ([]Project, error)
	// Get returns the project with the given ID, or nil when absent
	Get(id string) (*Project, error)
	// Upsert inserts or replaces the project with a matching ID
	Upsert(p Project) error
}

// FileStore persists the project list as a single JSON document on disk,
// mirroring a browser localStorage entry. Writes go through a temp file and
// rename so a crash mid-write never corrupts the stored list.
//
// Known limitation: two sessions writing the same store file race each
// other; there is no cross-process locking.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a FileStore at the given path
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// List returns all stored projects sorted by LastModified descending
func (fs *FileStore) List() ([]Project, error) {
	projects, err := fs.read()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].LastModified > projects[j].LastModified
	})
	return projects, nil
}

// Get returns the project with the given ID, or nil when absent
func (fs *FileStore) Get(id string) (*Project, error) {
	projects, err := fs.read()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// Upsert inserts or replaces the project with a matching ID
func (fs *FileStore) Upsert(p Project) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	projects, err := fs.read()
	if err != nil {
		return err
	}

	replaced := false
	for i := range projects {
		if projects[i].ID == p.ID {
			projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, p)
	}

	if err := fs.write(projects); err != nil {
		return err
	}

	fs.logger.Debug("project upserted",
		zap.String("project_id", p.ID),
		zap.Int("segments", len(p.Segments)),
		zap.Int("captions", len(p.Captions)))
	return nil
}

// read loads the stored project list; a missing file is an empty list
func (fs *FileStore) read() ([]Project, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project store: %w", err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse project store: %w", err)
	}
	return projects, nil
}

// write replaces the stored project list atomically
func (fs *FileStore) write(projects []Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project store: %w", err)
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tempFile := fs.path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write project store: %w", err)
	}
	if err := os.Rename(tempFile, fs.path); err != nil {
		return fmt.Errorf("failed to replace project store: %w", err)
	}
	return nil
}

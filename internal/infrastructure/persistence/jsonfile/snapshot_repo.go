// Package jsonfile implements the snapshot persistence layer on top of a
// single JSON file. The file is overwritten as a whole on every save;
// there is no locking and no partial-write protection.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/school-hub/school-manager/internal/domain/school"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// SNAPSHOT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// document is the on-disk form of a snapshot. SnapshotID and SavedAt are
// metadata stamps; they do not participate in round-trip equality.
type document struct {
	SnapshotID string `json:"snapshot_id"`
	SavedAt    string `json:"saved_at"`

	school.Snapshot
}

// SnapshotRepository implements school.SnapshotRepository for a JSON file.
type SnapshotRepository struct {
	path string
}

// NewSnapshotRepository creates a repository bound to the given file path.
func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{path: path}
}

// Path returns the file path this repository reads and writes.
func (r *SnapshotRepository) Path() string {
	return r.path
}

// Load reads the snapshot file and decodes it. A missing file is not an
// error: an empty snapshot with counters at 1 is returned. A file that
// exists but cannot be decoded fails with school.ErrSnapshotCorrupt.
func (r *SnapshotRepository) Load(_ context.Context) (*school.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return school.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", r.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, school.WrapError("snapshot", "Load", school.ErrSnapshotCorrupt,
			fmt.Sprintf("cannot decode %s", r.path), err)
	}

	snap := doc.Snapshot
	if snap.Students == nil {
		snap.Students = []school.Student{}
	}
	if snap.Teachers == nil {
		snap.Teachers = []school.Teacher{}
	}
	if snap.Courses == nil {
		snap.Courses = []school.Course{}
	}
	if snap.Enrollments == nil {
		snap.Enrollments = []school.Enrollment{}
	}

	return &snap, nil
}

// Save serializes the snapshot and overwrites the file. Each artifact is
// stamped with a fresh snapshot id and a UTC timestamp.
func (r *SnapshotRepository) Save(_ context.Context, snap *school.Snapshot) error {
	doc := document{
		SnapshotID: uuid.NewString(),
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
		Snapshot:   *snap,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file %s: %w", r.path, err)
	}

	return nil
}

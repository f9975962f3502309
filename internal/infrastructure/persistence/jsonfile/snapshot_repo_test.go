package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/school-hub/school-manager/internal/domain/school"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "school.json"))

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snap.Students)
	assert.Empty(t, snap.Teachers)
	assert.Empty(t, snap.Courses)
	assert.Empty(t, snap.Enrollments)
	assert.Equal(t, school.Counters{Student: 1, Teacher: 1, Course: 1}, snap.Counters)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "school.json"))
	ctx := context.Background()

	reg := school.NewRegistry()
	reg.AddStudent("Alice", 14)
	reg.AddTeacher("Mr. Smith", "Math")
	reg.AddCourse("Algebra", 1)
	reg.Enroll(1, 1)
	// Dangling pair must be retained verbatim through the cycle.
	reg.Enroll(42, 7)

	require.NoError(t, repo.Save(ctx, reg.Snapshot()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg.Snapshot(), loaded)
}

func TestSave_OverwritesPriorContent(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "school.json"))
	ctx := context.Background()

	first := school.NewRegistry()
	first.AddStudent("Alice", 14)
	require.NoError(t, repo.Save(ctx, first.Snapshot()))

	second := school.NewRegistry()
	second.AddTeacher("Mr. Smith", "Math")
	require.NoError(t, repo.Save(ctx, second.Snapshot()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Students)
	assert.Len(t, loaded.Teachers, 1)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewSnapshotRepository(path)
	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.True(t, school.IsSnapshotCorrupt(err))
}

func TestSave_StampsMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.json")
	repo := NewSnapshotRepository(path)

	require.NoError(t, repo.Save(context.Background(), school.NewSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		SnapshotID string `json:"snapshot_id"`
		SavedAt    string `json:"saved_at"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	_, err = uuid.Parse(doc.SnapshotID)
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.SavedAt)
}

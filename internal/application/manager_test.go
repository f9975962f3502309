package application

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/school-hub/school-manager/internal/domain/school"
	"github.com/school-hub/school-manager/internal/infrastructure/persistence/jsonfile"
	"github.com/school-hub/school-manager/internal/seed"
	"github.com/school-hub/school-manager/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, path string) *Manager {
	t.Helper()
	repo := jsonfile.NewSnapshotRepository(path)
	mgr, err := New(context.Background(), repo, logger.New(io.Discard, logger.LevelError))
	require.NoError(t, err)
	return mgr
}

func TestManager_FreshPathStartsEmpty(t *testing.T) {
	mgr := newTestManager(t, filepath.Join(t.TempDir(), "school.json"))

	assert.True(t, mgr.IsEmpty())
	assert.Empty(t, mgr.Students())
	assert.Equal(t, 1, mgr.AddStudent("Alice", 14))
}

func TestManager_ScenarioRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.json")
	ctx := context.Background()

	mgr := newTestManager(t, path)
	assert.Equal(t, 1, mgr.AddStudent("Alice", 14))
	assert.Equal(t, 1, mgr.AddTeacher("Mr. Smith", "Math"))
	assert.Equal(t, 1, mgr.AddCourse("Algebra", 1))
	mgr.Enroll(1, 1)
	require.NoError(t, mgr.Save(ctx))

	reloaded := newTestManager(t, path)
	assert.Equal(t, []school.Student{{ID: 1, Name: "Alice", Age: 14}}, reloaded.Students())
	assert.Equal(t, []school.Teacher{{ID: 1, Name: "Mr. Smith", Subject: "Math"}}, reloaded.Teachers())
	assert.Equal(t, []school.Course{{ID: 1, Name: "Algebra", TeacherID: 1}}, reloaded.Courses())
	assert.Equal(t, []school.Enrollment{{StudentID: 1, CourseID: 1}}, reloaded.Enrollments())

	// Numbering continues after the reload, no reuse or collision.
	assert.Equal(t, 2, reloaded.AddStudent("Bob", 15))
}

func TestManager_DanglingEnrollmentSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.json")
	ctx := context.Background()

	mgr := newTestManager(t, path)
	mgr.Enroll(42, 7)
	require.NoError(t, mgr.Save(ctx))

	reloaded := newTestManager(t, path)
	assert.Equal(t, []school.Enrollment{{StudentID: 42, CourseID: 7}}, reloaded.Enrollments())
}

func TestManager_CorruptSnapshotFailsConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.json")
	require.NoError(t, os.WriteFile(path, []byte("not a snapshot"), 0o644))

	repo := jsonfile.NewSnapshotRepository(path)
	_, err := New(context.Background(), repo, logger.New(io.Discard, logger.LevelError))

	require.Error(t, err)
	assert.True(t, school.IsSnapshotCorrupt(err))
}

func TestManager_ApplySeed(t *testing.T) {
	mgr := newTestManager(t, filepath.Join(t.TempDir(), "school.json"))

	mgr.ApplySeed(&seed.File{
		Teachers:    []seed.TeacherSeed{{Name: "Mr. Smith", Subject: "Math"}},
		Students:    []seed.StudentSeed{{Name: "Alice", Age: 14}},
		Courses:     []seed.CourseSeed{{Name: "Algebra", Teacher: 1}},
		Enrollments: []seed.EnrollmentSeed{{Student: 1, Course: 1}},
	})

	assert.Len(t, mgr.Students(), 1)
	assert.Len(t, mgr.Teachers(), 1)
	assert.Len(t, mgr.Courses(), 1)
	assert.Equal(t, []school.Enrollment{{StudentID: 1, CourseID: 1}}, mgr.Enrollments())
}

// Package application orchestrates registry operations and persistence.
package application

import (
	"context"
	"fmt"
	"os"

	"github.com/school-hub/school-manager/internal/domain/school"
	"github.com/school-hub/school-manager/internal/infrastructure/roster"
	"github.com/school-hub/school-manager/internal/seed"
	"github.com/school-hub/school-manager/pkg/logger"
)

// Manager binds the in-memory registry to its snapshot repository. The
// prior state is loaded once at construction; Save writes the current
// state back as a whole.
type Manager struct {
	reg  *school.Registry
	repo school.SnapshotRepository
	log  *logger.Logger
}

// New loads the persisted snapshot through repo and returns a Manager
// holding the reconstructed registry. A corrupt snapshot fails the
// construction rather than producing partial data.
func New(ctx context.Context, repo school.SnapshotRepository, log *logger.Logger) (*Manager, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	reg := school.NewRegistry()
	reg.Restore(snap)

	log.Debug("registry loaded",
		logger.Count(len(snap.Students)+len(snap.Teachers)+len(snap.Courses)))

	return &Manager{reg: reg, repo: repo, log: log}, nil
}

// AddStudent creates a student and returns its id.
func (m *Manager) AddStudent(name string, age int) int {
	id := m.reg.AddStudent(name, age)
	m.log.Info("student added", logger.StudentID(id))
	return id
}

// AddTeacher creates a teacher and returns its id.
func (m *Manager) AddTeacher(name, subject string) int {
	id := m.reg.AddTeacher(name, subject)
	m.log.Info("teacher added", logger.TeacherID(id))
	return id
}

// AddCourse creates a course and returns its id. The teacher reference is
// stored verbatim.
func (m *Manager) AddCourse(name string, teacherID int) int {
	id := m.reg.AddCourse(name, teacherID)
	m.log.Info("course added", logger.CourseID(id), logger.TeacherID(teacherID))
	return id
}

// Enroll records a (student, course) pair. Idempotent.
func (m *Manager) Enroll(studentID, courseID int) {
	m.reg.Enroll(studentID, courseID)
	m.log.Info("student enrolled", logger.StudentID(studentID), logger.CourseID(courseID))
}

// Students returns all students in creation order.
func (m *Manager) Students() []school.Student { return m.reg.Students() }

// Teachers returns all teachers in creation order.
func (m *Manager) Teachers() []school.Teacher { return m.reg.Teachers() }

// Courses returns all courses in creation order.
func (m *Manager) Courses() []school.Course { return m.reg.Courses() }

// Enrollments returns all enrollment pairs in creation order.
func (m *Manager) Enrollments() []school.Enrollment { return m.reg.Enrollments() }

// IsEmpty reports whether the registry holds no data.
func (m *Manager) IsEmpty() bool { return m.reg.IsEmpty() }

// Save persists the full registry state.
func (m *Manager) Save(ctx context.Context) error {
	if err := m.repo.Save(ctx, m.reg.Snapshot()); err != nil {
		m.log.Error("save failed", logger.Err(err))
		return fmt.Errorf("save snapshot: %w", err)
	}
	m.log.Info("registry saved")
	return nil
}

// ImportRoster reads an Excel roster file and adds its students to the
// registry. Returns the number of students added.
func (m *Manager) ImportRoster(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()

	added, err := roster.ImportStudents(m.reg, f)
	if err != nil {
		return 0, fmt.Errorf("import roster %s: %w", path, err)
	}

	m.log.Info("roster imported", logger.Path(path), logger.Count(added))
	return added, nil
}

// ExportWorkbook writes the full registry state to an Excel workbook at
// the given path.
func (m *Manager) ExportWorkbook(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook %s: %w", path, err)
	}
	defer f.Close()

	if err := roster.ExportWorkbook(m.reg, f); err != nil {
		return fmt.Errorf("export workbook %s: %w", path, err)
	}

	m.log.Info("workbook exported", logger.Path(path))
	return nil
}

// ApplySeed preloads the registry with seed data.
func (m *Manager) ApplySeed(f *seed.File) {
	f.Apply(m.reg)
	m.log.Info("seed applied",
		logger.Count(len(f.Students)+len(f.Teachers)+len(f.Courses)+len(f.Enrollments)))
}

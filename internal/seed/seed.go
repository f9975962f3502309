// Package seed preloads an empty registry with demo data from a YAML file.
package seed

import (
	"fmt"
	"os"

	"github.com/school-hub/school-manager/internal/domain/school"

	"gopkg.in/yaml.v3"
)

// StudentSeed describes one student to create.
type StudentSeed struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
}

// TeacherSeed describes one teacher to create.
type TeacherSeed struct {
	Name    string `yaml:"name"`
	Subject string `yaml:"subject"`
}

// CourseSeed describes one course to create. Teacher is a teacher id and
// is stored verbatim, matching the registry's permissive referencing.
type CourseSeed struct {
	Name    string `yaml:"name"`
	Teacher int    `yaml:"teacher"`
}

// EnrollmentSeed describes one enrollment pair.
type EnrollmentSeed struct {
	Student int `yaml:"student"`
	Course  int `yaml:"course"`
}

// File is the root of a seed document.
type File struct {
	Students    []StudentSeed    `yaml:"students"`
	Teachers    []TeacherSeed    `yaml:"teachers"`
	Courses     []CourseSeed     `yaml:"courses"`
	Enrollments []EnrollmentSeed `yaml:"enrollments"`
}

// Load reads and decodes a seed file. Decoding errors surface before any
// registry mutation happens.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	return &f, nil
}

// Apply creates all seeded entities in registry order: teachers first so
// course references line up, then students, courses, and enrollments.
func (f *File) Apply(reg *school.Registry) {
	for _, t := range f.Teachers {
		reg.AddTeacher(t.Name, t.Subject)
	}
	for _, s := range f.Students {
		reg.AddStudent(s.Name, s.Age)
	}
	for _, c := range f.Courses {
		reg.AddCourse(c.Name, c.Teacher)
	}
	for _, e := range f.Enrollments {
		reg.Enroll(e.Student, e.Course)
	}
}

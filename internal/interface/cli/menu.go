// Package cli implements the interactive menu over stdin/stdout. It is a
// thin presentation layer: every choice maps to one Manager operation.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/school-hub/school-manager/internal/application"
	"github.com/school-hub/school-manager/internal/domain/school"
	"github.com/school-hub/school-manager/pkg/logger"
)

// Menu drives the interactive loop. Input and output are injected so the
// loop can be scripted in tests.
type Menu struct {
	in  *bufio.Reader
	out io.Writer
	mgr *application.Manager
	log *logger.Logger
}

// New creates a Menu reading from in and writing to out.
func New(mgr *application.Manager, in io.Reader, out io.Writer, log *logger.Logger) *Menu {
	return &Menu{
		in:  bufio.NewReader(in),
		out: out,
		mgr: mgr,
		log: log,
	}
}

// Run executes the menu loop until the user exits or input ends. The
// registry is saved on exit.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			// Input ended; save and leave like an explicit exit.
			return m.mgr.Save(ctx)
		}

		switch choice {
		case "1":
			m.addStudent()
		case "2":
			m.addTeacher()
		case "3":
			m.addCourse()
		case "4":
			m.enroll()
		case "5":
			m.listStudents()
		case "6":
			m.listTeachers()
		case "7":
			m.listCourses()
		case "8":
			m.importRoster()
		case "9":
			m.exportWorkbook()
		case "10":
			if err := m.mgr.Save(ctx); err != nil {
				fmt.Fprintln(m.out, "Error:", err)
			} else {
				fmt.Fprintln(m.out, "Saved")
			}
		case "0":
			if err := m.mgr.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(m.out, "Bye")
			return nil
		default:
			m.log.Debug("unknown menu option", logger.String("choice", choice))
			fmt.Fprintln(m.out, "Unknown option")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "School Management")
	fmt.Fprintln(m.out, "1) Add student")
	fmt.Fprintln(m.out, "2) Add teacher")
	fmt.Fprintln(m.out, "3) Add course")
	fmt.Fprintln(m.out, "4) Enroll student in course")
	fmt.Fprintln(m.out, "5) List students")
	fmt.Fprintln(m.out, "6) List teachers")
	fmt.Fprintln(m.out, "7) List courses")
	fmt.Fprintln(m.out, "8) Import roster (xlsx)")
	fmt.Fprintln(m.out, "9) Export workbook (xlsx)")
	fmt.Fprintln(m.out, "10) Save")
	fmt.Fprintln(m.out, "0) Exit")
}

func (m *Menu) addStudent() {
	name, err := m.prompt("Student name: ")
	if err != nil {
		return
	}
	age, err := m.promptInt("Age: ")
	if err != nil {
		return
	}
	id := m.mgr.AddStudent(name, age)
	fmt.Fprintf(m.out, "Added student id %d\n", id)
}

func (m *Menu) addTeacher() {
	name, err := m.prompt("Teacher name: ")
	if err != nil {
		return
	}
	subject, err := m.prompt("Subject: ")
	if err != nil {
		return
	}
	id := m.mgr.AddTeacher(name, subject)
	fmt.Fprintf(m.out, "Added teacher id %d\n", id)
}

func (m *Menu) addCourse() {
	name, err := m.prompt("Course name: ")
	if err != nil {
		return
	}
	raw, err := m.prompt("Teacher id (or leave blank): ")
	if err != nil {
		return
	}
	teacherID := 0
	if raw != "" {
		teacherID, err = parseInt(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid integer.")
			return
		}
	}
	id := m.mgr.AddCourse(name, teacherID)
	fmt.Fprintf(m.out, "Added course id %d\n", id)
}

func (m *Menu) enroll() {
	studentID, err := m.promptInt("Student id: ")
	if err != nil {
		return
	}
	courseID, err := m.promptInt("Course id: ")
	if err != nil {
		return
	}
	m.mgr.Enroll(studentID, courseID)
	fmt.Fprintln(m.out, "Enrolled successfully")
}

func (m *Menu) listStudents() {
	for _, s := range m.mgr.Students() {
		fmt.Fprintf(m.out, "%d) %s, age %d\n", s.ID, s.Name, s.Age)
	}
}

func (m *Menu) listTeachers() {
	for _, t := range m.mgr.Teachers() {
		fmt.Fprintf(m.out, "%d) %s, %s\n", t.ID, t.Name, t.Subject)
	}
}

func (m *Menu) listCourses() {
	for _, c := range m.mgr.Courses() {
		fmt.Fprintf(m.out, "%d) %s, teacher %d\n", c.ID, c.Name, c.TeacherID)
	}
}

func (m *Menu) importRoster() {
	path, err := m.prompt("Roster path: ")
	if err != nil {
		return
	}
	added, err := m.mgr.ImportRoster(path)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintf(m.out, "Imported %d students\n", added)
}

func (m *Menu) exportWorkbook() {
	path, err := m.prompt("Workbook path: ")
	if err != nil {
		return
	}
	if err := m.mgr.ExportWorkbook(path); err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintf(m.out, "Exported to %s\n", path)
}

// prompt prints msg and reads one trimmed line.
func (m *Menu) prompt(msg string) (string, error) {
	fmt.Fprint(m.out, msg)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt keeps asking until it gets a valid integer or input ends.
func (m *Menu) promptInt(msg string) (int, error) {
	for {
		raw, err := m.prompt(msg)
		if err != nil {
			return 0, err
		}
		n, err := parseInt(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid integer.")
			continue
		}
		return n, nil
	}
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, school.WrapError("cli", "ParseInt", school.ErrInvalidInput,
			fmt.Sprintf("not an integer: %q", raw), err)
	}
	return n, nil
}

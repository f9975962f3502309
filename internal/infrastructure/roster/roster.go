// Package roster moves registry data in and out of Excel workbooks:
// bulk student import from a roster sheet and a full workbook export.
package roster

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/school-hub/school-manager/internal/domain/school"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by ExportWorkbook.
const (
	sheetStudents    = "Students"
	sheetTeachers    = "Teachers"
	sheetCourses     = "Courses"
	sheetEnrollments = "Enrollments"
)

// ImportStudents reads an Excel roster and adds one student per row to the
// registry. Column A is the student name, column B the age. The first row
// is treated as a header. Rows with an empty name or a non-numeric age are
// skipped. Returns the number of students added.
func ImportStudents(reg *school.Registry, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return 0, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	added := 0
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}

		var name, ageCell string
		if len(row) > 0 {
			name = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			ageCell = strings.TrimSpace(row[1])
		}

		if name == "" {
			continue
		}
		age, err := strconv.Atoi(ageCell)
		if err != nil {
			continue
		}

		reg.AddStudent(name, age)
		added++
	}

	return added, nil
}

// ExportWorkbook writes the full registry state to w as an Excel workbook
// with one sheet per collection.
func ExportWorkbook(reg *school.Registry, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetStudents); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{sheetTeachers, sheetCourses, sheetEnrollments} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	students := reg.Students()
	rows := make([][]any, 0, len(students))
	for _, s := range students {
		rows = append(rows, []any{s.ID, s.Name, s.Age})
	}
	if err := writeSheet(f, sheetStudents, []any{"ID", "Name", "Age"}, rows); err != nil {
		return err
	}

	teachers := reg.Teachers()
	rows = rows[:0]
	for _, t := range teachers {
		rows = append(rows, []any{t.ID, t.Name, t.Subject})
	}
	if err := writeSheet(f, sheetTeachers, []any{"ID", "Name", "Subject"}, rows); err != nil {
		return err
	}

	courses := reg.Courses()
	rows = rows[:0]
	for _, c := range courses {
		rows = append(rows, []any{c.ID, c.Name, c.TeacherID})
	}
	if err := writeSheet(f, sheetCourses, []any{"ID", "Name", "TeacherID"}, rows); err != nil {
		return err
	}

	enrollments := reg.Enrollments()
	rows = rows[:0]
	for _, e := range enrollments {
		rows = append(rows, []any{e.StudentID, e.CourseID})
	}
	if err := writeSheet(f, sheetEnrollments, []any{"StudentID", "CourseID"}, rows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header on sheet %s: %w", sheet, err)
	}
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row on sheet %s: %w", sheet, err)
		}
	}
	return nil
}

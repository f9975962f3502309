package school

// Registry хранит все коллекции реестра в памяти. Каждый тип сущностей
// имеет собственный монотонный счётчик идентификаторов, начинающийся с 1.
// Порядок добавления сохраняется для всех коллекций.
//
// Registry единолично владеет своими коллекциями: методы List* и
// Snapshot возвращают копии.
type Registry struct {
	students    []Student
	teachers    []Teacher
	courses     []Course
	enrollments []Enrollment

	nextStudentID int
	nextTeacherID int
	nextCourseID  int
}

// NewRegistry создаёт пустой реестр со счётчиками, равными 1.
func NewRegistry() *Registry {
	return &Registry{
		nextStudentID: 1,
		nextTeacherID: 1,
		nextCourseID:  1,
	}
}

// AddStudent добавляет студента и возвращает выданный идентификатор.
// Значения сохраняются как есть, без дополнительной валидации.
func (r *Registry) AddStudent(name string, age int) int {
	id := r.nextStudentID
	r.nextStudentID++
	r.students = append(r.students, Student{ID: id, Name: name, Age: age})
	return id
}

// AddTeacher добавляет преподавателя и возвращает выданный идентификатор.
func (r *Registry) AddTeacher(name, subject string) int {
	id := r.nextTeacherID
	r.nextTeacherID++
	r.teachers = append(r.teachers, Teacher{ID: id, Name: name, Subject: subject})
	return id
}

// AddCourse добавляет курс и возвращает выданный идентификатор.
// teacherID сохраняется как есть: существование преподавателя не
// проверяется, висячие ссылки допустимы.
func (r *Registry) AddCourse(name string, teacherID int) int {
	id := r.nextCourseID
	r.nextCourseID++
	r.courses = append(r.courses, Course{ID: id, Name: name, TeacherID: teacherID})
	return id
}

// Enroll записывает пару (studentID, courseID). Повторный вызов с той же
// парой не имеет эффекта. Существование студента и курса не проверяется.
func (r *Registry) Enroll(studentID, courseID int) {
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return
		}
	}
	r.enrollments = append(r.enrollments, Enrollment{StudentID: studentID, CourseID: courseID})
}

// Students возвращает всех студентов в порядке добавления.
func (r *Registry) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// Teachers возвращает всех преподавателей в порядке добавления.
func (r *Registry) Teachers() []Teacher {
	out := make([]Teacher, len(r.teachers))
	copy(out, r.teachers)
	return out
}

// Courses возвращает все курсы в порядке добавления.
func (r *Registry) Courses() []Course {
	out := make([]Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// Enrollments возвращает все записи на курсы в порядке добавления.
func (r *Registry) Enrollments() []Enrollment {
	out := make([]Enrollment, len(r.enrollments))
	copy(out, r.enrollments)
	return out
}

// Snapshot возвращает полную копию состояния реестра, включая счётчики.
func (r *Registry) Snapshot() *Snapshot {
	return &Snapshot{
		Students:    r.Students(),
		Teachers:    r.Teachers(),
		Courses:     r.Courses(),
		Enrollments: r.Enrollments(),
		Counters: Counters{
			Student: r.nextStudentID,
			Teacher: r.nextTeacherID,
			Course:  r.nextCourseID,
		},
	}
}

// Restore заменяет состояние реестра содержимым снимка. Нулевой или
// отсутствующий счётчик восстанавливается как max(id)+1 по коллекции.
func (r *Registry) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}

	r.students = append([]Student(nil), snap.Students...)
	r.teachers = append([]Teacher(nil), snap.Teachers...)
	r.courses = append([]Course(nil), snap.Courses...)
	r.enrollments = dedupeEnrollments(snap.Enrollments)

	r.nextStudentID = snap.Counters.Student
	if r.nextStudentID < 1 {
		r.nextStudentID = 1
		for _, s := range r.students {
			if s.ID >= r.nextStudentID {
				r.nextStudentID = s.ID + 1
			}
		}
	}

	r.nextTeacherID = snap.Counters.Teacher
	if r.nextTeacherID < 1 {
		r.nextTeacherID = 1
		for _, t := range r.teachers {
			if t.ID >= r.nextTeacherID {
				r.nextTeacherID = t.ID + 1
			}
		}
	}

	r.nextCourseID = snap.Counters.Course
	if r.nextCourseID < 1 {
		r.nextCourseID = 1
		for _, c := range r.courses {
			if c.ID >= r.nextCourseID {
				r.nextCourseID = c.ID + 1
			}
		}
	}
}

// IsEmpty сообщает, пуст ли реестр.
func (r *Registry) IsEmpty() bool {
	return len(r.students) == 0 && len(r.teachers) == 0 &&
		len(r.courses) == 0 && len(r.enrollments) == 0
}

func dedupeEnrollments(in []Enrollment) []Enrollment {
	out := make([]Enrollment, 0, len(in))
	for _, e := range in {
		dup := false
		for _, kept := range out {
			if kept == e {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

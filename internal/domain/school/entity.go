// Package school содержит доменную модель школьного реестра:
// студенты, преподаватели, курсы и записи на курсы.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package school

// Student представляет студента. Записи неизменяемы после создания,
// операция удаления отсутствует.
type Student struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Teacher представляет преподавателя. Идентификаторы преподавателей
// нумеруются независимо от студентов и курсов.
type Teacher struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// Course представляет курс. TeacherID хранится как есть: ссылка не
// проверяется на существование, ноль означает "не назначен".
type Course struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TeacherID int    `json:"teacher_id"`
}

// Enrollment представляет запись студента на курс. Пара (StudentID,
// CourseID) уникальна в рамках реестра; порядок добавления сохраняется.
type Enrollment struct {
	StudentID int `json:"student_id"`
	CourseID  int `json:"course_id"`
}

package school

// Counters содержит текущие значения счётчиков идентификаторов по
// каждому пространству нумерации.
type Counters struct {
	Student int `json:"student"`
	Teacher int `json:"teacher"`
	Course  int `json:"course"`
}

// Snapshot представляет полное состояние реестра в форме, пригодной для
// сериализации. Снимок не разделяет память с реестром.
type Snapshot struct {
	Students    []Student    `json:"students"`
	Teachers    []Teacher    `json:"teachers"`
	Courses     []Course     `json:"courses"`
	Enrollments []Enrollment `json:"enrollments"`
	Counters    Counters     `json:"counters"`
}

// NewSnapshot возвращает пустой снимок со счётчиками, равными 1.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Students:    []Student{},
		Teachers:    []Teacher{},
		Courses:     []Course{},
		Enrollments: []Enrollment{},
		Counters:    Counters{Student: 1, Teacher: 1, Course: 1},
	}
}

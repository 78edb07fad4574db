package models

// Course represents a course taught by a teacher.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"required,max=100"`
	Description string `json:"description" db:"description"`
	TeacherID   int64  `json:"teacherId" db:"teacher_id" validate:"required"`
}

// CourseSchema maps Course to the courses table. Course names are unique per teacher.
var CourseSchema = &Schema[Course]{
	Name:   "course",
	Plural: "courses",
	Table:  "courses",
	ID:     func(c *Course) *int64 { return &c.ID },
	Columns: []Column[Course]{
		{Name: "name", Field: "name", Text: true, Ref: func(c *Course) any { return &c.Name }},
		{Name: "description", Field: "description", Text: true, Ref: func(c *Course) any { return &c.Description }},
		{Name: "teacher_id", Field: "teacherId", Ref: func(c *Course) any { return &c.TeacherID }},
	},
	NaturalKey: []string{"name", "teacher_id"},
	ForeignKeys: []ForeignKey{
		{Column: "teacher_id", Field: "teacherId", References: "teachers"},
	},
}

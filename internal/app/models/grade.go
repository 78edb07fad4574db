package models

// Grade is the score a student obtained in a course
type Grade struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id" validate:"required"`
	CourseID  int64 `json:"courseId" db:"course_id" validate:"required"`
	Value     int   `json:"grade" db:"grade" validate:"gte=0,lte=100" example:"85"`
}

// GradeSchema maps Grade to the grades table. One grade per student and course.
var GradeSchema = &Schema[Grade]{
	Name:   "grade",
	Plural: "grades",
	Table:  "grades",
	ID:     func(g *Grade) *int64 { return &g.ID },
	Columns: []Column[Grade]{
		{Name: "student_id", Field: "studentId", Ref: func(g *Grade) any { return &g.StudentID }},
		{Name: "course_id", Field: "courseId", Ref: func(g *Grade) any { return &g.CourseID }},
		{Name: "grade", Field: "grade", Ref: func(g *Grade) any { return &g.Value }},
	},
	NaturalKey: []string{"student_id", "course_id"},
	ForeignKeys: []ForeignKey{
		{Column: "student_id", Field: "studentId", References: "students"},
		{Column: "course_id", Field: "courseId", References: "courses"},
	},
}

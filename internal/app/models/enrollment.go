package models

// Enrollment links a student to a course they attend.
type Enrollment struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id" validate:"required"`
	CourseID  int64 `json:"courseId" db:"course_id" validate:"required"`
}

// EnrollmentSchema maps Enrollment to the enrollments table.
var EnrollmentSchema = &Schema[Enrollment]{
	Name:   "enrollment",
	Plural: "enrollments",
	Table:  "enrollments",
	ID:     func(e *Enrollment) *int64 { return &e.ID },
	Columns: []Column[Enrollment]{
		{Name: "student_id", Field: "studentId", Ref: func(e *Enrollment) any { return &e.StudentID }},
		{Name: "course_id", Field: "courseId", Ref: func(e *Enrollment) any { return &e.CourseID }},
	},
	NaturalKey: []string{"student_id", "course_id"},
	ForeignKeys: []ForeignKey{
		{Column: "student_id", Field: "studentId", References: "students"},
		{Column: "course_id", Field: "courseId", References: "courses"},
	},
}

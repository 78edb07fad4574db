package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	FirstName string `json:"firstName" db:"first_name" validate:"required,max=100" example:"Ada"`
	LastName  string `json:"lastName" db:"last_name" validate:"required,max=100" example:"Lovelace"`
	Email     string `json:"email" db:"email" validate:"omitempty,max=100,email" example:"ada@lincoln.edu"`
	Phone     string `json:"phone" db:"phone" validate:"omitempty,max=45,phone" example:"555-0101"`
	SchoolID  int64  `json:"schoolId" db:"school_id" validate:"required" example:"1"` // School the student attends
}

// StudentSchema maps Student to the students table.
// A student is identified by first name, last name and email.
var StudentSchema = &Schema[Student]{
	Name:   "student",
	Plural: "students",
	Table:  "students",
	ID:     func(s *Student) *int64 { return &s.ID },
	Columns: []Column[Student]{
		{Name: "first_name", Field: "firstName", Text: true, Ref: func(s *Student) any { return &s.FirstName }},
		{Name: "last_name", Field: "lastName", Text: true, Ref: func(s *Student) any { return &s.LastName }},
		{Name: "email", Field: "email", Text: true, Ref: func(s *Student) any { return &s.Email }},
		{Name: "phone", Field: "phone", Text: true, Ref: func(s *Student) any { return &s.Phone }},
		{Name: "school_id", Field: "schoolId", Ref: func(s *Student) any { return &s.SchoolID }},
	},
	NaturalKey: []string{"first_name", "last_name", "email"},
	ForeignKeys: []ForeignKey{
		{Column: "school_id", Field: "schoolId", References: "schools"},
	},
}

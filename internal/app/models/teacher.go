package models

// Teacher represents a teacher employed by a school
type Teacher struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	FirstName string `json:"firstName" db:"first_name" validate:"required,max=100" example:"Alan"`
	LastName  string `json:"lastName" db:"last_name" validate:"required,max=100" example:"Turing"`
	Email     string `json:"email" db:"email" validate:"omitempty,max=100,email" example:"turing@lincoln.edu"`
	Phone     string `json:"phone" db:"phone" validate:"omitempty,max=45,phone" example:"555-0102"`
	SchoolID  int64  `json:"schoolId" db:"school_id" validate:"required" example:"1"`
}

// TeacherSchema maps Teacher to the teachers table.
var TeacherSchema = &Schema[Teacher]{
	Name:   "teacher",
	Plural: "teachers",
	Table:  "teachers",
	ID:     func(t *Teacher) *int64 { return &t.ID },
	Columns: []Column[Teacher]{
		{Name: "first_name", Field: "firstName", Text: true, Ref: func(t *Teacher) any { return &t.FirstName }},
		{Name: "last_name", Field: "lastName", Text: true, Ref: func(t *Teacher) any { return &t.LastName }},
		{Name: "email", Field: "email", Text: true, Ref: func(t *Teacher) any { return &t.Email }},
		{Name: "phone", Field: "phone", Text: true, Ref: func(t *Teacher) any { return &t.Phone }},
		{Name: "school_id", Field: "schoolId", Ref: func(t *Teacher) any { return &t.SchoolID }},
	},
	NaturalKey: []string{"first_name", "last_name", "email"},
	ForeignKeys: []ForeignKey{
		{Column: "school_id", Field: "schoolId", References: "schools"},
	},
}

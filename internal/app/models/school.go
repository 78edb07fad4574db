package models

// School represents a school that students and teachers belong to
type School struct {
	ID    int64  `json:"id" db:"id" example:"1"`
	Name  string `json:"name" db:"name" validate:"required,max=100" example:"Lincoln High"`
	Web   string `json:"web" db:"web" validate:"required,max=100,fqdn|url" example:"lincoln.edu"`
	Email string `json:"email" db:"email" validate:"omitempty,max=100,email" example:"office@lincoln.edu"`
	Phone string `json:"phone" db:"phone" validate:"omitempty,max=45,phone" example:"555-0100"`
}

// SchoolSchema maps School to the schools table. The name is unique.
var SchoolSchema = &Schema[School]{
	Name:   "school",
	Plural: "schools",
	Table:  "schools",
	ID:     func(s *School) *int64 { return &s.ID },
	Columns: []Column[School]{
		{Name: "name", Field: "name", Text: true, Ref: func(s *School) any { return &s.Name }},
		{Name: "web", Field: "web", Text: true, Ref: func(s *School) any { return &s.Web }},
		{Name: "email", Field: "email", Text: true, Ref: func(s *School) any { return &s.Email }},
		{Name: "phone", Field: "phone", Text: true, Ref: func(s *School) any { return &s.Phone }},
	},
	NaturalKey: []string{"name"},
}

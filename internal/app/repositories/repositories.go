package repositories

import (
	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository     *Repository[models.School]
	StudentRepository    *Repository[models.Student]
	TeacherRepository    *Repository[models.Teacher]
	CourseRepository     *Repository[models.Course]
	GradeRepository      *Repository[models.Grade]
	EnrollmentRepository *Repository[models.Enrollment]
}

// NewRepositories initializes all repositories with the same delete policy
func NewRepositories(database *db.Database, policy DeletePolicy) *Repositories {
	return &Repositories{
		SchoolRepository:     NewRepository(database, models.SchoolSchema, policy),
		StudentRepository:    NewRepository(database, models.StudentSchema, policy),
		TeacherRepository:    NewRepository(database, models.TeacherSchema, policy),
		CourseRepository:     NewRepository(database, models.CourseSchema, policy),
		GradeRepository:      NewRepository(database, models.GradeSchema, policy),
		EnrollmentRepository: NewRepository(database, models.EnrollmentSchema, policy),
	}
}

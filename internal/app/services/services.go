package services

import (
	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/app/repositories"
)

// Services holds one resource service per entity type
type Services struct {
	SchoolService     ResourceService[models.School]
	StudentService    ResourceService[models.Student]
	TeacherService    ResourceService[models.Teacher]
	CourseService     ResourceService[models.Course]
	GradeService      ResourceService[models.Grade]
	EnrollmentService ResourceService[models.Enrollment]
}

// NewServices initializes all services over repos
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		SchoolService:     NewResourceService(models.SchoolSchema, repos.SchoolRepository),
		StudentService:    NewResourceService(models.StudentSchema, repos.StudentRepository),
		TeacherService:    NewResourceService(models.TeacherSchema, repos.TeacherRepository),
		CourseService:     NewResourceService(models.CourseSchema, repos.CourseRepository),
		GradeService:      NewResourceService(models.GradeSchema, repos.GradeRepository),
		EnrollmentService: NewResourceService(models.EnrollmentSchema, repos.EnrollmentRepository),
	}
}

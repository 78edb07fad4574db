package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/app/services"
)

// RelationRoute binds a relationship listing to its path below /api/v1
type RelationRoute struct {
	Path    string
	Handler gin.HandlerFunc
}

// Controllers holds all the controller instances
type Controllers struct {
	SchoolController     *ResourceController[models.School]
	StudentController    *ResourceController[models.Student]
	TeacherController    *ResourceController[models.Teacher]
	CourseController     *ResourceController[models.Course]
	GradeController      *ResourceController[models.Grade]
	EnrollmentController *ResourceController[models.Enrollment]
	HealthController     *HealthController
	Relations            []RelationRoute
}

// NewControllers initializes all controllers. apiBase is the path prefix of
// the resource collections, used for Location headers.
func NewControllers(svc *services.Services, db Pinger, apiBase string) *Controllers {
	locate := func(plural string) string { return apiBase + "/" + plural }

	return &Controllers{
		SchoolController:     NewResourceController(svc.SchoolService, locate(models.SchoolSchema.Plural)),
		StudentController:    NewResourceController(svc.StudentService, locate(models.StudentSchema.Plural)),
		TeacherController:    NewResourceController(svc.TeacherService, locate(models.TeacherSchema.Plural)),
		CourseController:     NewResourceController(svc.CourseService, locate(models.CourseSchema.Plural)),
		GradeController:      NewResourceController(svc.GradeService, locate(models.GradeSchema.Plural)),
		EnrollmentController: NewResourceController(svc.EnrollmentService, locate(models.EnrollmentSchema.Plural)),
		HealthController:     NewHealthController(db),
		Relations: []RelationRoute{
			{"/schools/:id/students", NewRelationController(svc.SchoolService, svc.StudentService, "school_id").List},
			{"/schools/:id/teachers", NewRelationController(svc.SchoolService, svc.TeacherService, "school_id").List},
			{"/teachers/:id/courses", NewRelationController(svc.TeacherService, svc.CourseService, "teacher_id").List},
			{"/students/:id/grades", NewRelationController(svc.StudentService, svc.GradeService, "student_id").List},
			{"/students/:id/enrollments", NewRelationController(svc.StudentService, svc.EnrollmentService, "student_id").List},
			{"/courses/:id/grades", NewRelationController(svc.CourseService, svc.GradeService, "course_id").List},
			{"/courses/:id/enrollments", NewRelationController(svc.CourseService, svc.EnrollmentService, "course_id").List},
		},
	}
}

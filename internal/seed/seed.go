package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/academies/internal/app/models"
	appServices "github.com/yigit/academies/internal/app/services"
)

// CreateDefaultData fills an empty database with a demo school, one teacher,
// one student and a course the student is enrolled and graded in.
// Nothing is written when any school already exists.
func CreateDefaultData(ctx context.Context, svc *appServices.Services, lgr zerolog.Logger) error {
	schools, err := svc.SchoolService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing schools: %w", err)
	}
	if len(schools) > 0 {
		lgr.Debug().Int("schools", len(schools)).Msg("Database already has data, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating default data (Lincoln High)...")

	school, err := svc.SchoolService.Create(ctx, &appModels.School{
		Name:  "Lincoln High",
		Web:   "lincoln.edu",
		Email: "office@lincoln.edu",
		Phone: "555-0100",
	})
	if err != nil {
		return fmt.Errorf("error creating demo school: %w", err)
	}

	teacher, err := svc.TeacherService.Create(ctx, &appModels.Teacher{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace.hopper@lincoln.edu",
		SchoolID:  school.ID,
	})
	if err != nil {
		return fmt.Errorf("error creating demo teacher: %w", err)
	}

	student, err := svc.StudentService.Create(ctx, &appModels.Student{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@lincoln.edu",
		SchoolID:  school.ID,
	})
	if err != nil {
		return fmt.Errorf("error creating demo student: %w", err)
	}

	course, err := svc.CourseService.Create(ctx, &appModels.Course{
		Name:        "Algorithms",
		Description: "Introduction to algorithms",
		TeacherID:   teacher.ID,
	})
	if err != nil {
		return fmt.Errorf("error creating demo course: %w", err)
	}

	if _, err := svc.EnrollmentService.Create(ctx, &appModels.Enrollment{StudentID: student.ID, CourseID: course.ID}); err != nil {
		return fmt.Errorf("error creating demo enrollment: %w", err)
	}
	if _, err := svc.GradeService.Create(ctx, &appModels.Grade{StudentID: student.ID, CourseID: course.ID, Value: 95}); err != nil {
		return fmt.Errorf("error creating demo grade: %w", err)
	}

	lgr.Info().Int64("schoolId", school.ID).Msg("Default data created")
	return nil
}

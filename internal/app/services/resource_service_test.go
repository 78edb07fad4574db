package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/app/repositories"
	"github.com/yigit/academies/internal/pkg/apperrors"
	"github.com/yigit/academies/internal/pkg/patch"
	"github.com/yigit/academies/internal/pkg/validation"
	"github.com/yigit/academies/internal/testutil"
)

func newTestServices(t *testing.T, policy repositories.DeletePolicy) *Services {
	t.Helper()
	database := testutil.NewTestDatabase(t)
	return NewServices(repositories.NewRepositories(database, policy))
}

func replaceOp(path string, value any) patch.Operation {
	raw, _ := json.Marshal(value)
	return patch.Operation{Op: "replace", Path: path, Value: raw}
}

func createSchool(t *testing.T, svc *Services, name string) *models.School {
	t.Helper()
	school, err := svc.SchoolService.Create(context.Background(), &models.School{Name: name, Web: "example.org"})
	require.NoError(t, err)
	return school
}

func TestLincolnHighScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)

	created, err := svc.SchoolService.Create(ctx, &models.School{Name: "Lincoln High", Web: "lincoln.edu"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.SchoolService.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lincoln High", got.Name)
	assert.Equal(t, "lincoln.edu", got.Web)

	require.NoError(t, svc.SchoolService.Patch(ctx, 1, patch.Document{replaceOp("/phone", "555-0100")}))

	got, err = svc.SchoolService.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "Lincoln High", got.Name)
}

func TestCreate_ThenGetReturnsEqualRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	school := createSchool(t, svc, "Springfield Elementary")

	input := &models.Student{FirstName: "Lisa", LastName: "Simpson", Email: "lisa@springfield.edu", Phone: "555-0199", SchoolID: school.ID}
	created, err := svc.StudentService.Create(ctx, input)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.StudentService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	school := createSchool(t, svc, "Lincoln High")

	t.Run("nil input", func(t *testing.T) {
		_, err := svc.SchoolService.Create(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("preset id", func(t *testing.T) {
		_, err := svc.SchoolService.Create(ctx, &models.School{ID: 42, Name: "Preset", Web: "preset.edu"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := svc.SchoolService.Create(ctx, &models.School{})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)

		ce, ok := apperrors.AsCustomError(err)
		require.True(t, ok)
		violations, ok := ce.Details["violations"].([]validation.Violation)
		require.True(t, ok)
		fields := make([]string, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, v.Field)
		}
		assert.ElementsMatch(t, []string{"name", "web"}, fields)
	})

	t.Run("invalid email format", func(t *testing.T) {
		_, err := svc.SchoolService.Create(ctx, &models.School{Name: "Bad Mail", Web: "bad.edu", Email: "not-an-email"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("grade out of range", func(t *testing.T) {
		_, err := svc.GradeService.Create(ctx, &models.Grade{StudentID: 1, CourseID: 1, Value: 101})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("missing foreign key target", func(t *testing.T) {
		_, err := svc.StudentService.Create(ctx, &models.Student{FirstName: "Bart", LastName: "Simpson", SchoolID: 999})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		ce, ok := apperrors.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, "schoolId", ce.Field)
	})

	t.Run("duplicate natural key is case-insensitive", func(t *testing.T) {
		before, err := svc.SchoolService.List(ctx)
		require.NoError(t, err)

		_, err = svc.SchoolService.Create(ctx, &models.School{Name: "LINCOLN high", Web: "other.edu"})
		require.ErrorIs(t, err, apperrors.ErrDuplicate)
		ce, ok := apperrors.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, "LINCOLN high", ce.Details["name"])

		after, err := svc.SchoolService.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("duplicate person", func(t *testing.T) {
		teacher := &models.Teacher{FirstName: "Edna", LastName: "Krabappel", Email: "edna@lincoln.edu", SchoolID: school.ID}
		_, err := svc.TeacherService.Create(ctx, teacher)
		require.NoError(t, err)

		_, err = svc.TeacherService.Create(ctx, &models.Teacher{FirstName: "edna", LastName: "KRABAPPEL", Email: "Edna@Lincoln.edu", SchoolID: school.ID})
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)

		// same name, different email is another person
		_, err = svc.TeacherService.Create(ctx, &models.Teacher{FirstName: "Edna", LastName: "Krabappel", Email: "edna2@lincoln.edu", SchoolID: school.ID})
		assert.NoError(t, err)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)

	_, err := svc.SchoolService.GetByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = svc.SchoolService.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestList_OrderedByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)

	empty, err := svc.SchoolService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	createSchool(t, svc, "Zeta")
	createSchool(t, svc, "Alpha")

	schools, err := svc.SchoolService.List(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 2)
	assert.Equal(t, "Zeta", schools[0].Name)
	assert.Equal(t, "Alpha", schools[1].Name)
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	school, err := svc.SchoolService.Create(ctx, &models.School{Name: "Lincoln High", Web: "lincoln.edu", Email: "office@lincoln.edu", Phone: "555-0100"})
	require.NoError(t, err)

	t.Run("total overwrite", func(t *testing.T) {
		input := &models.School{ID: school.ID, Name: "Lincoln Academy", Web: "academy.lincoln.edu"}
		require.NoError(t, svc.SchoolService.Replace(ctx, school.ID, input))

		got, err := svc.SchoolService.GetByID(ctx, school.ID)
		require.NoError(t, err)
		assert.Equal(t, input, got)
		assert.Empty(t, got.Phone, "fields absent from input are not preserved")
	})

	t.Run("id mismatch", func(t *testing.T) {
		err := svc.SchoolService.Replace(ctx, school.ID, &models.School{ID: school.ID + 1, Name: "X", Web: "x.edu"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("nil input and zero id", func(t *testing.T) {
		assert.ErrorIs(t, svc.SchoolService.Replace(ctx, school.ID, nil), apperrors.ErrInvalidArgument)
		assert.ErrorIs(t, svc.SchoolService.Replace(ctx, 0, &models.School{Name: "X", Web: "x.edu"}), apperrors.ErrInvalidArgument)
	})

	t.Run("absent record", func(t *testing.T) {
		err := svc.SchoolService.Replace(ctx, 999999, &models.School{ID: 999999, Name: "Ghost", Web: "ghost.edu"})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("validation still runs", func(t *testing.T) {
		err := svc.SchoolService.Replace(ctx, school.ID, &models.School{ID: school.ID, Name: "No Web"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestPatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	school, err := svc.SchoolService.Create(ctx, &models.School{Name: "Lincoln High", Web: "lincoln.edu", Email: "office@lincoln.edu"})
	require.NoError(t, err)

	t.Run("changes only patched fields", func(t *testing.T) {
		before, err := svc.SchoolService.GetByID(ctx, school.ID)
		require.NoError(t, err)

		require.NoError(t, svc.SchoolService.Patch(ctx, school.ID, patch.Document{
			replaceOp("/phone", "555-0100"),
			replaceOp("/web", "www.lincoln.edu"),
		}))

		after, err := svc.SchoolService.GetByID(ctx, school.ID)
		require.NoError(t, err)
		expected := *before
		expected.Phone = "555-0100"
		expected.Web = "www.lincoln.edu"
		assert.Equal(t, &expected, after)
	})

	t.Run("empty document leaves the record unchanged", func(t *testing.T) {
		before, err := svc.SchoolService.GetByID(ctx, school.ID)
		require.NoError(t, err)
		require.NoError(t, svc.SchoolService.Patch(ctx, school.ID, patch.Document{}))
		after, err := svc.SchoolService.GetByID(ctx, school.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		assert.ErrorIs(t, svc.SchoolService.Patch(ctx, 0, patch.Document{replaceOp("/phone", "1")}), apperrors.ErrInvalidArgument)
		assert.ErrorIs(t, svc.SchoolService.Patch(ctx, school.ID, nil), apperrors.ErrInvalidArgument)
	})

	t.Run("absent record is a validation error", func(t *testing.T) {
		err := svc.SchoolService.Patch(ctx, 999999, patch.Document{replaceOp("/phone", "1")})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("id and unknown fields are rejected", func(t *testing.T) {
		assert.ErrorIs(t, svc.SchoolService.Patch(ctx, school.ID, patch.Document{replaceOp("/id", 7)}), apperrors.ErrValidationFailed)
		assert.ErrorIs(t, svc.SchoolService.Patch(ctx, school.ID, patch.Document{replaceOp("/motto", "x")}), apperrors.ErrValidationFailed)
	})

	t.Run("merged record is validated", func(t *testing.T) {
		err := svc.SchoolService.Patch(ctx, school.ID, patch.Document{{Op: "remove", Path: "/name"}})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		got, err := svc.SchoolService.GetByID(ctx, school.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lincoln High", got.Name)
	})

	t.Run("foreign keys are checked", func(t *testing.T) {
		student, err := svc.StudentService.Create(ctx, &models.Student{FirstName: "Ada", LastName: "Lovelace", SchoolID: school.ID})
		require.NoError(t, err)

		err = svc.StudentService.Patch(ctx, student.ID, patch.Document{replaceOp("/schoolId", 424242)})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	school := createSchool(t, svc, "Lincoln High")

	assert.ErrorIs(t, svc.SchoolService.Delete(ctx, 0), apperrors.ErrInvalidArgument)
	assert.NoError(t, svc.SchoolService.Delete(ctx, 999999))

	require.NoError(t, svc.SchoolService.Delete(ctx, school.ID))
	require.NoError(t, svc.SchoolService.Delete(ctx, school.ID), "second delete is a no-op")

	_, err := svc.SchoolService.GetByID(ctx, school.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDelete_RestrictPolicy(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	school := createSchool(t, svc, "Lincoln High")
	_, err := svc.StudentService.Create(ctx, &models.Student{FirstName: "Ada", LastName: "Lovelace", SchoolID: school.ID})
	require.NoError(t, err)

	err = svc.SchoolService.Delete(ctx, school.ID)
	assert.ErrorIs(t, err, apperrors.ErrHasDependents)

	_, err = svc.SchoolService.GetByID(ctx, school.ID)
	assert.NoError(t, err)
}

func TestDelete_CascadePolicy(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteCascade)
	school := createSchool(t, svc, "Lincoln High")

	teacher, err := svc.TeacherService.Create(ctx, &models.Teacher{FirstName: "Grace", LastName: "Hopper", SchoolID: school.ID})
	require.NoError(t, err)
	student, err := svc.StudentService.Create(ctx, &models.Student{FirstName: "Ada", LastName: "Lovelace", SchoolID: school.ID})
	require.NoError(t, err)
	course, err := svc.CourseService.Create(ctx, &models.Course{Name: "Algorithms", TeacherID: teacher.ID})
	require.NoError(t, err)
	grade, err := svc.GradeService.Create(ctx, &models.Grade{StudentID: student.ID, CourseID: course.ID, Value: 90})
	require.NoError(t, err)

	require.NoError(t, svc.SchoolService.Delete(ctx, school.ID))

	_, err = svc.CourseService.GetByID(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	_, err = svc.GradeService.GetByID(ctx, grade.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	students, err := svc.StudentService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestListBy(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, repositories.DeleteRestrict)
	lincoln := createSchool(t, svc, "Lincoln High")
	other := createSchool(t, svc, "Other High")

	for _, name := range []string{"Ada", "Alan"} {
		_, err := svc.StudentService.Create(ctx, &models.Student{FirstName: name, LastName: "Test", SchoolID: lincoln.ID})
		require.NoError(t, err)
	}
	_, err := svc.StudentService.Create(ctx, &models.Student{FirstName: "Grace", LastName: "Test", SchoolID: other.ID})
	require.NoError(t, err)

	students, err := svc.StudentService.ListBy(ctx, "school_id", lincoln.ID)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ada", students[0].FirstName)

	_, err = svc.StudentService.ListBy(ctx, "first_name", lincoln.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	_, err = svc.StudentService.ListBy(ctx, "school_id", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

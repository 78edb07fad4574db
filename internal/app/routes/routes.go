package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/controllers"
	"github.com/yigit/academies/internal/middleware"
)

// APIBasePath is the prefix of every versioned endpoint
const APIBasePath = "/api/v1"

// crudHandlers is the handler set every resource controller provides
type crudHandlers interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Replace(ctx *gin.Context)
	Patch(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers) {
	// API version group
	v1 := router.Group(APIBasePath)

	registerResource(v1, "/schools", ctrl.SchoolController)
	registerResource(v1, "/students", ctrl.StudentController)
	registerResource(v1, "/teachers", ctrl.TeacherController)
	registerResource(v1, "/courses", ctrl.CourseController)
	registerResource(v1, "/grades", ctrl.GradeController)
	registerResource(v1, "/enrollments", ctrl.EnrollmentController)

	// Derived collections, e.g. the students of a school
	for _, rel := range ctrl.Relations {
		v1.GET(rel.Path, rel.Handler)
	}

	v1.GET("/health", ctrl.HealthController.Health)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}

func registerResource(group *gin.RouterGroup, path string, h crudHandlers) {
	jsonBody := middleware.AcceptContentTypes(middleware.MIMEJSON)
	jsonPatch := middleware.AcceptContentTypes(middleware.MIMEJSONPatch, middleware.MIMEJSON)

	resource := group.Group(path)
	{
		resource.GET("", h.List)
		resource.GET("/:id", h.GetByID)
		resource.POST("", jsonBody, h.Create)
		resource.PUT("/:id", jsonBody, h.Replace)
		resource.PATCH("/:id", jsonPatch, h.Patch)
		resource.DELETE("/:id", h.Delete)
	}
}

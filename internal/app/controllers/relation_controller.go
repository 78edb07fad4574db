package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/models/dto"
	"github.com/yigit/academies/internal/app/services"
	"github.com/yigit/academies/internal/middleware"
)

// RelationController lists the children of a parent record, e.g. the
// students of a school. P is the parent type and C the child type.
type RelationController[P, C any] struct {
	parent services.ResourceService[P]
	child  services.ResourceService[C]
	column string
}

// NewRelationController creates a controller listing child records whose
// column references the parent id
func NewRelationController[P, C any](parent services.ResourceService[P], child services.ResourceService[C], column string) *RelationController[P, C] {
	return &RelationController[P, C]{
		parent: parent,
		child:  child,
		column: column,
	}
}

// List returns the children of the parent in the path
// @Summary List related records
// @Description Returns the records referencing a parent, e.g. /schools/{id}/students
// @Tags relations
// @Produce json
// @Param resource path string true "Parent collection" Enums(schools, teachers, students, courses)
// @Param id path int true "Parent ID" Format(int64) minimum(1)
// @Param related path string true "Child collection" Enums(students, teachers, courses, grades, enrollments)
// @Success 200 {object} dto.APIResponse "Related records retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource}/{id}/{related} [get]
func (c *RelationController[P, C]) List(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if _, err := c.parent.GetByID(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, err := c.child.ListBy(ctx.Request.Context(), c.column, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

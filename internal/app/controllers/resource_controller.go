package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/models/dto"
	"github.com/yigit/academies/internal/app/services"
	"github.com/yigit/academies/internal/middleware"
	"github.com/yigit/academies/internal/pkg/patch"
)

// ResourceController serves the CRUD endpoints of one entity type.
// The swagger comments use {resource} for the collection name
// (schools, students, teachers, courses, grades, enrollments).
type ResourceController[T any] struct {
	service  services.ResourceService[T]
	basePath string
}

// NewResourceController creates a controller whose created records are
// located under basePath (e.g. /api/v1/schools)
func NewResourceController[T any](service services.ResourceService[T], basePath string) *ResourceController[T] {
	return &ResourceController[T]{
		service:  service,
		basePath: basePath,
	}
}

// List returns every record of the collection
// @Summary List records
// @Description Returns all records of the collection ordered by id
// @Tags resources
// @Produce json
// @Param resource path string true "Collection" Enums(schools, students, teachers, courses, grades, enrollments)
// @Success 200 {object} dto.APIResponse "Records retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource} [get]
func (c *ResourceController[T]) List(ctx *gin.Context) {
	records, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetByID returns a single record
// @Summary Get a record
// @Description Returns the record with the given id
// @Tags resources
// @Produce json
// @Param resource path string true "Collection" Enums(schools, students, teachers, courses, grades, enrollments)
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource}/{id} [get]
func (c *ResourceController[T]) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	record, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// Create inserts a new record
// @Summary Create a record
// @Description Validates and stores a new record. The id is assigned by the server.
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Collection" Enums(schools, students, teachers, courses, grades, enrollments)
// @Param request body object true "Record fields"
// @Success 201 {object} dto.APIResponse "Record created; Location points at it"
// @Header 201 {string} Location "/api/v1/{resource}/{id}"
// @Failure 400 {object} dto.ErrorResponse "Invalid, duplicate or malformed record"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource} [post]
func (c *ResourceController[T]) Create(ctx *gin.Context) {
	input, ok := decodeBody[T](ctx)
	if !ok {
		return
	}

	created, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id := *c.service.Schema().ID(created)
	ctx.Header("Location", fmt.Sprintf("%s/%d", c.basePath, id))
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Replace overwrites a record
// @Summary Replace a record
// @Description Overwrites every field of an existing record. The body id must match the path id.
// @Tags resources
// @Accept json
// @Param resource path string true "Collection" Enums(schools, students, teachers, courses, grades, enrollments)
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Param request body object true "Complete record including id"
// @Success 204 "Record replaced"
// @Failure 400 {object} dto.ErrorResponse "Invalid record or id mismatch"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource}/{id} [put]
func (c *ResourceController[T]) Replace(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	input, ok := decodeBody[T](ctx)
	if !ok {
		return
	}

	if err := c.service.Replace(ctx.Request.Context(), id, input); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Patch applies a JSON Patch document to a record
// @Summary Patch a record
// @Description Applies RFC 6902 operations to the mutable fields of a record
// @Tags resources
// @Accept json-patch+json
// @Accept json
// @Param resource path string true "Collection" Enums(schools, students, teachers, courses, grades, enrollments)
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Param request body []patch.Operation true "Patch operations"
// @Success 204 "Record patched"
// @Failure 400 {object} dto.ErrorResponse "Invalid patch, id or result"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource}/{id} [patch]
func (c *ResourceController[T]) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	doc, ok := decodeBody[patch.Document](ctx)
	if !ok {
		return
	}

	var ops patch.Document
	if doc != nil {
		ops = *doc
	}

	if err := c.service.Patch(ctx.Request.Context(), id, ops); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete removes a record
// @Summary Delete a record
// @Description Deletes the record with the given id. Deleting an absent record succeeds.
// @Tags resources
// @Param resource path string true "Collection" Enums(schools, students, teachers, courses, grades, enrollments)
// @Param id path int true "Record ID" Format(int64) minimum(1)
// @Success 204 "Record deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 409 {object} dto.ErrorResponse "Record is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /{resource}/{id} [delete]
func (c *ResourceController[T]) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseID reads an integer path parameter, writing a 400 when it is not a number
func parseID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil {
		middleware.RespondBadRequest(ctx, dto.ErrorCodeInvalidArgument, "Invalid id",
			map[string]interface{}{param: ctx.Param(param)})
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON request body. An empty or null body yields nil
// so the service can reject it; malformed JSON is answered with a 400 here.
func decodeBody[B any](ctx *gin.Context) (*B, bool) {
	raw, err := ctx.GetRawData()
	if err != nil {
		middleware.RespondBadRequest(ctx, dto.ErrorCodeMalformedBody, "Could not read request body", nil)
		return nil, false
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}

	var body B
	if err := json.Unmarshal(trimmed, &body); err != nil {
		middleware.RespondBadRequest(ctx, dto.ErrorCodeMalformedBody, "Invalid JSON body", err.Error())
		return nil, false
	}
	return &body, true
}

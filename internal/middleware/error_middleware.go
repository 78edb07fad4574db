package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/models/dto"
	"github.com/yigit/academies/internal/pkg/apperrors"
	"github.com/yigit/academies/internal/pkg/logger"
)

// HandleAPIError maps service errors to status codes and writes the error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Unhandled error while serving request")
		if gin.Mode() == gin.DebugMode {
			detail.WithDebugInfo("%v", err)
		}
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// RespondBadRequest writes a 400 for input that could not be decoded
func RespondBadRequest(c *gin.Context, code dto.ErrorCode, message string, details interface{}) {
	detail := dto.NewErrorDetail(code, message)
	if details != nil {
		detail.WithDetails(details)
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var (
		status int
		code   dto.ErrorCode
	)

	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, code = http.StatusBadRequest, dto.ErrorCodeInvalidArgument
	case errors.Is(err, apperrors.ErrValidationFailed):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrDuplicate):
		status, code = http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists
	case errors.Is(err, apperrors.ErrResourceNotFound):
		// 404 carries only code and message
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrHasDependents):
		status, code = http.StatusConflict, dto.ErrorCodeResourceReferenced
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}

	detail := dto.NewErrorDetail(code, messageOf(err, http.StatusText(status)))
	if ce, ok := apperrors.AsCustomError(err); ok {
		if ce.Field != "" {
			detail.WithField(ce.Field)
		}
		if len(ce.Details) > 0 {
			detail.WithDetails(ce.Details)
		}
	}
	return status, detail
}

func messageOf(err error, fallback string) string {
	if ce, ok := apperrors.AsCustomError(err); ok && ce.Message != "" {
		return ce.Message
	}
	if err != nil {
		return err.Error()
	}
	return fallback
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
)

// StatusCode maps a domain error class to an HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsMissingDispositionError(err):
		return http.StatusBadRequest
	case errs.IsInvalidInputError(err):
		return http.StatusBadRequest
	case errs.IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, errs.ErrChartUnavailable), errors.Is(err, errs.ErrExportUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response; internal details are logged, never returned
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusCode(err)
	message := err.Error()

	fields := map[string]any{
		"operation":  operation,
		"error":      err.Error(),
		"request_id": c.GetString(middleware.RequestIDKey),
	}
	if userID, ok := c.Get(middleware.UserIDKey); ok {
		fields["user_id"] = userID
	}

	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		for k, v := range ve.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		if status == http.StatusInternalServerError {
			message = "Internal server error"
		}
	} else {
		logger.Debug("Request rejected", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// badRequest writes a 400 for malformed input that never reached the domain
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}

// pathID parses a positive numeric path parameter, writing a 400 on failure
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body, writing a 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return false
	}
	return true
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"firestation-backend/middelware"
	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// responder is embedded by every resource controller
type responder struct {
	logger    logger.Logger
	validator *validator.Validate
}

func newResponder(log logger.Logger) responder {
	return responder{logger: log, validator: services.NewValidator()}
}

func (r *responder) ok(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, models.APIResponse{
		Status:  "success",
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func (r *responder) invalid(c *gin.Context, message string, fields map[string]string) {
	resp := models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: message,
		Errors:  fields,
		Error:   &models.APIError{Type: "ValidationError"},
	}
	// a single failing field is also named in error.field
	if len(fields) == 1 {
		for field, details := range fields {
			resp.Error.Field = field
			resp.Error.Details = details
		}
	}
	c.JSON(http.StatusBadRequest, resp)
}

// bind decodes the JSON body into req and runs struct validation
func (r *responder) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		r.logger.Warnf("Invalid request body for %s %s: %v", c.Request.Method, c.FullPath(), err)
		r.invalid(c, "Invalid request body", map[string]string{"request": err.Error()})
		return false
	}
	if err := r.validator.Struct(req); err != nil {
		r.invalid(c, "Validation failed", services.FieldErrors(err))
		return false
	}
	return true
}

// bindOptional is bind for endpoints whose body may be omitted
func (r *responder) bindOptional(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return r.bind(c, req)
}

// fail maps err onto a status code and writes the error envelope
func (r *responder) fail(c *gin.Context, action string, err error) {
	if verr, ok := services.IsValidationError(err); ok {
		r.invalid(c, "Validation failed", verr.Fields)
		return
	}

	code, errType := http.StatusInternalServerError, "InternalError"
	message := action
	switch {
	case errors.Is(err, models.ErrNoLowStockSelected):
		code, errType, message = http.StatusBadRequest, "ValidationError", models.ErrNoLowStockSelected.Error()
	case errors.Is(err, models.ErrNotFound):
		code, errType = http.StatusNotFound, "NotFound"
	case errors.Is(err, models.ErrInvalidCredentials):
		code, errType, message = http.StatusUnauthorized, "AuthenticationError", "Invalid email or password"
	case errors.Is(err, models.ErrForbidden):
		code, errType = http.StatusForbidden, "AuthorizationError"
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrReorderNotDeletable),
		errors.Is(err, models.ErrRequestNotOpen),
		errors.Is(err, models.ErrConflict):
		code, errType = http.StatusConflict, "ConflictError"
	case errors.Is(err, models.ErrBudgetExceeded):
		code, errType = http.StatusUnprocessableEntity, "BudgetError"
	}

	details := err.Error()
	if code == http.StatusInternalServerError {
		r.logger.Errorf("%s: %v", action, err)
		details = "an unexpected error occurred"
	} else {
		r.logger.Warnf("%s: %v", action, err)
	}

	c.JSON(code, models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    errType,
			Details: details,
		},
	})
}

// session returns the caller; routes using it are always behind AuthMiddleware
func session(c *gin.Context) *models.Session {
	s, ok := middelware.SessionFrom(c)
	if !ok {
		return &models.Session{}
	}
	return s
}

// pageParams reads page and limit, clamping limit to maxPageSize
func pageParams(c *gin.Context) (page, limit int) {
	page, limit = 1, defaultPageSize
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// boolParam parses an optional boolean query flag
func boolParam(c *gin.Context, name string, fields map[string]string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		fields[name] = name + " must be true or false"
		return nil
	}
	return &v
}

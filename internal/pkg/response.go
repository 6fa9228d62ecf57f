package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/hirebridge/backoffice/internal/domain"
)

// Response is the standard JSON envelope for API responses.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ValidationErrorResponse is the JSON envelope for validation error responses.
type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// PageMeta is the pagination block of list responses, mirroring the
// upstream wire shape so the console can treat both alike.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPage  int `json:"totalPage"`
}

// ListData is the data block of a paginated list response.
type ListData struct {
	Items      any      `json:"items"`
	Pagination PageMeta `json:"pagination"`
	// Warning carries a non-fatal fetch failure when the items shown are
	// the last good page (stale-while-error display).
	Warning string `json:"warning,omitempty"`
}

// Success sends a 200 JSON response with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// List sends a 200 JSON response for paginated list results.
func List(c *gin.Context, data ListData) {
	Success(c, data)
}

// Error sends a JSON error response. If err is a *domain.AppError, its code
// is mapped to the appropriate HTTP status; otherwise 500 is returned.
// Upstream failure messages are surfaced verbatim; everything else gets the
// AppError message.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)
	c.JSON(status, Response{
		Code:    status,
		Message: ErrorMessage(err),
		Data:    nil,
	})
}

// ErrorMessage returns the operator-facing message for err: the AppError
// message when present, a generic one otherwise.
func ErrorMessage(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it sends a validation error response and returns false.
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

// validationError sends a 400 response. validator.ValidationErrors are
// unpacked into per-field messages using JSON tag names when obj is known.
func validationError(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, Response{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
		return
	}

	jsonTags := jsonTagMap(obj)
	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		name := strings.ToLower(fe.Field())
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[name] = msg
	}

	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "validation error",
		Errors:  fieldErrors,
	})
}

// jsonTagMap returns a map from struct field name to its JSON tag name.
// Returns an empty map when obj is not a struct (pointer).
func jsonTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			m[t.Field(i).Name] = name
		}
	}
	return m
}

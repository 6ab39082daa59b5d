package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// timestampLayouts are the accepted date-time forms. Layouts without a zone
// are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseTimestamp parses an ISO 8601 date-time with or without zone offset.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

var validatorOnce sync.Once

// setupValidator reports fields by their JSON name and adds the "timestamp"
// tag to gin's validator. It runs once per process.
func setupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
			_, err := ParseTimestamp(fl.Field().String())
			return err == nil
		})
	})
}

// FormatValidationErrors maps each failing field to a readable message.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field()] = describe(e)
	}
	return fields
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + e.Param()
	case "timestamp":
		return "must be an ISO 8601 date-time"
	case "max":
		return "must be at most " + e.Param() + " characters"
	default:
		return fmt.Sprintf("failed %q validation", e.Tag())
	}
}

// BindAndValidate binds the request body to a struct and validates it.
// If binding fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	setupValidator()
	return respondBindError(c, c.ShouldBindJSON(obj))
}

// BindForm is BindAndValidate for handlers that accept JSON or form bodies.
func BindForm(c *gin.Context, obj interface{}) bool {
	setupValidator()
	return respondBindError(c, c.ShouldBind(obj))
}

func respondBindError(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		ValidationFailed(c, FormatValidationErrors(verrs))
		return false
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		ValidationFailed(c, map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()})
		return false
	}
	BadRequest(c, "Invalid request payload: "+err.Error())
	return false
}

package http

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"task-prioritizer/pkg/datemath"
)

const (
	tagNotBlank = "notblank"
	tagISODate  = "isodate"
)

// Field-level messages, keyed by validation tag.
var fieldMessages = map[string]string{
	"required":  msgRequired,
	tagNotBlank: "This field may not be blank.",
	tagISODate:  msgDateFormat,
	"min":       "Ensure this value is greater than or equal to %s.",
	"max":       "Ensure this value is less than or equal to %s.",
}

var registerOnce sync.Once

// registerValidations installs the custom tags on gin's validator engine and
// makes field errors report json names.
func registerValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation(tagISODate, func(fl validator.FieldLevel) bool {
			_, err := datemath.ParseDate(fl.Field().String())
			return err == nil
		})
	})
}

// validateTask runs the binding rules of taskReq and adds one message per
// failing field to details. Fields that already carry a decode error are skipped.
func validateTask(req *taskReq, details map[string]any) {
	err := binding.Validator.ValidateStruct(req)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details[fieldNonField] = []string{err.Error()}
		return
	}

	for _, fe := range verrs {
		if _, exists := details[fe.Field()]; exists {
			continue
		}
		details[fe.Field()] = []string{fieldMessage(fe)}
	}
}

func fieldMessage(fe validator.FieldError) string {
	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		return msgInvalidValue
	}
	if strings.Contains(msg, "%s") {
		return strings.Replace(msg, "%s", fe.Param(), 1)
	}
	return msg
}

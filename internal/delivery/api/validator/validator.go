// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var personNamePattern = regexp.MustCompile(`^[A-Z][a-z]*$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the project tags registered:
// personname, taskstatus and taskpriority.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	mustRegister(v, "personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "taskstatus", func(fl validator.FieldLevel) bool {
		return entity.TaskStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "taskpriority", func(fl validator.FieldLevel) bool {
		return entity.TaskPriority(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks i and reports every failing field in the error details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Field()+": "+describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "personname":
		return "must start with a capital letter followed by lowercase letters"
	case "taskstatus":
		return "must be one of WAITING, IN_PROGRESS, COMPLETED"
	case "taskpriority":
		return "must be one of LOW, MEDIUM, HIGH"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "len":
		return "must be exactly " + fe.Param() + " characters long"
	case "numeric":
		return "must contain only digits"
	default:
		return "failed on " + fe.Tag()
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// formValidator checks every form payload the console accepts. Field names
// come from the json tag so FieldErrors keys match what the page submitted;
// fields hidden from json carry a field tag instead.
var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = fld.Tag.Get("field")
		}
		return name
	})
	return v
}

// validateForm runs the struct tags and translates the failures into the
// per-field messages the forms render.
func validateForm(form interface{}) FieldErrors {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": "invalid payload"}
	}
	fields := FieldErrors{}
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Tag() == "endswith":
		return "only CSV files are accepted"
	case fe.Field() == "file":
		return "a CSV file is required"
	case fe.StructNamespace() == "MappingForm.Roles":
		return "add at least one role"
	case fe.Kind() == reflect.Slice:
		return "select at least one option"
	default:
		return "this field is required"
	}
}

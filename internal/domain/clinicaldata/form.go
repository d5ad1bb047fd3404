package clinicaldata

import (
	"strings"

	"clinicals/internal/platform/validation"

	"github.com/go-playground/validator/v10"
)

func init() {
	validation.Register("component", func(fl validator.FieldLevel) bool {
		return Component(fl.Field().String()).Valid()
	}, `select a valid choice: "hw", "bp" or "heart rate"`)
}

// Form es el formulario de alta de un dato clínico.
type Form struct {
	ComponentName  string `json:"componentName" validate:"required,component"`
	ComponentValue string `json:"componentValue" validate:"required,max=20"`
}

func FormFromValues(v map[string]string) Form {
	return Form{
		ComponentName:  strings.TrimSpace(v["componentName"]),
		ComponentValue: strings.TrimSpace(v["componentValue"]),
	}
}

func (f Form) Validate() (Input, error) {
	if err := validation.Struct(f).Err(); err != nil {
		return Input{}, err
	}
	return Input{
		ComponentName:  Component(f.ComponentName),
		ComponentValue: f.ComponentValue,
	}, nil
}

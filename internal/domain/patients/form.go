package patients

import (
	"strconv"
	"strings"

	"clinicals/internal/platform/validation"
)

// Form es el formulario de alta/edición tal como llega del cliente.
type Form struct {
	FirstName string `json:"firstName" validate:"required,max=20"`
	LastName  string `json:"lastName" validate:"required,max=20"`
	Age       string `json:"age" validate:"required"`
}

// FormFromValues arma el Form desde valores planos (form-urlencoded o JSON).
func FormFromValues(v map[string]string) Form {
	return Form{
		FirstName: strings.TrimSpace(v["firstName"]),
		LastName:  strings.TrimSpace(v["lastName"]),
		Age:       strings.TrimSpace(v["age"]),
	}
}

// FormFromPatient prellena el formulario de edición.
func FormFromPatient(p Patient) Form {
	return Form{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       strconv.Itoa(p.Age),
	}
}

// Validate devuelve el Input listo para el Service o validation.FieldErrors.
func (f Form) Validate() (Input, error) {
	errs := validation.Struct(f)

	var age int
	if _, failed := errs["age"]; !failed {
		n, err := strconv.Atoi(f.Age)
		if err != nil {
			errs.Add("age", "enter a whole number")
		}
		age = n
	}

	if err := errs.Err(); err != nil {
		return Input{}, err
	}
	return Input{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Age:       age,
	}, nil
}

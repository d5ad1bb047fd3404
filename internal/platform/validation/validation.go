package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldErrors agrupa errores de formulario por nombre de campo (el mismo
// nombre que usa el cliente: tag json/form).
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add registra el primer error de un campo; los siguientes se ignoran.
func (e FieldErrors) Add(field, msg string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = msg
}

// Err devuelve nil si no hay errores.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var (
	once     sync.Once
	validate *validator.Validate

	mu       sync.RWMutex
	messages = map[string]string{}
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// Register agrega una regla custom (p.ej. "component") con su mensaje.
// No es seguro llamarlo en paralelo con Struct: usar desde init().
func Register(tag string, fn validator.Func, msg string) {
	if err := instance().RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
	mu.Lock()
	messages[tag] = msg
	mu.Unlock()
}

// Struct valida v según sus tags `validate` y traduce el resultado a FieldErrors.
func Struct(v any) FieldErrors {
	out := FieldErrors{}

	err := instance().Struct(v)
	if err == nil {
		return out
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out.Add("_", err.Error())
		return out
	}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
	case "oneof":
		return "select one of: " + fe.Param()
	}

	mu.RLock()
	msg, ok := messages[fe.Tag()]
	mu.RUnlock()
	if ok {
		return msg
	}
	return "invalid value (" + fe.Tag() + ")"
}

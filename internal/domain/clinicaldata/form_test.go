package clinicaldata

import (
	"errors"
	"testing"

	"clinicals/internal/platform/validation"
)

func TestForm_ValidateChoices(t *testing.T) {
	for _, ch := range []string{"hw", "bp", "heart rate"} {
		in, err := FormFromValues(map[string]string{"componentName": ch, "componentValue": "1"}).Validate()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", ch, err)
		}
		if string(in.ComponentName) != ch || in.ComponentValue != "1" {
			t.Fatalf("%q: unexpected input: %#v", ch, in)
		}
	}
}

func TestForm_ValidateFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
		field  string
	}{
		{"invalid component", map[string]string{"componentName": "invalid", "componentValue": "1"}, "componentName"},
		{"missing component", map[string]string{"componentValue": "1"}, "componentName"},
		{"empty value", map[string]string{"componentName": "bp", "componentValue": " "}, "componentValue"},
		{"value too long", map[string]string{"componentName": "bp", "componentValue": "123456789012345678901"}, "componentValue"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FormFromValues(tc.values).Validate()

			var fieldErrs validation.FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if fieldErrs[tc.field] == "" {
				t.Fatalf("expected error on %q, got %#v", tc.field, fieldErrs)
			}
		})
	}
}

// Package validate provides struct-tag validation for request inputs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	in=a|b|c            value must be one of the listed items
//	integer             whole number
//	numeric             any number
//	alpha_dash          letters, digits, hyphens, underscores
//	confirmed           must equal a sibling field named <Field>Confirmation
//
// Example:
//
//	type SignupInput struct {
//	    Name     string `json:"name"     validate:"required,min=2,max=100"`
//	    Email    string `json:"email"    validate:"required,email"`
//	    Password string `json:"password" validate:"required,min=6"`
//	}
package validate

import (
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → message; an empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, field.Name, name, value, rv); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors reports whether the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, goName, field string, v reflect.Value, parent reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if _, err := mail.ParseAddress(raw); err != nil {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if v.Kind() == reflect.String {
			if len([]rune(raw)) < n {
				return fmt.Sprintf("The %s field must be at least %d characters.", field, n)
			}
		} else if num, ok := asFloat(v); ok && num < float64(n) {
			return fmt.Sprintf("The %s field must be at least %d.", field, n)
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if v.Kind() == reflect.String {
			if len([]rune(raw)) > n {
				return fmt.Sprintf("The %s field may not be greater than %d characters.", field, n)
			}
		} else if num, ok := asFloat(v); ok && num > float64(n) {
			return fmt.Sprintf("The %s field may not be greater than %d.", field, n)
		}

	case "in":
		for _, opt := range strings.Split(param, "|") {
			if raw == opt {
				return ""
			}
		}
		return fmt.Sprintf("The %s field must be one of: %s.", field, strings.ReplaceAll(param, "|", ", "))

	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}

	case "alpha_dash":
		for _, r := range raw {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
				return fmt.Sprintf("The %s field may only contain letters, numbers, dashes and underscores.", field)
			}
		}

	case "confirmed":
		sibling := parent.FieldByName(goName + "Confirmation")
		if !sibling.IsValid() || sibling.Interface() != v.Interface() {
			return fmt.Sprintf("The %s confirmation does not match.", field)
		}
	}

	return ""
}

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == want {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// jsonFieldName prefers the json tag name, falling back to the Go name.
func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

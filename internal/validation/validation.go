// Package validation holds the field-level rules of every form in the portal.
// Rules are declared as `validate` tags on the form structs and checked with
// go-playground/validator; failures come back as Errors keyed by form field.
package validation

import (
	"errors"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^\d{9,12}$`)
	nationalIDPattern = regexp.MustCompile(`^\d{12}$`)
)

// MaxCVSize is the upper bound for an uploaded CV.
const MaxCVSize = 10 << 20

var cvContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

var cvExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Errors maps a form field name to the message shown next to it.
type Errors map[string]string

func (e Errors) Error() string {
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

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		return IsNationalID(fl.Field().String())
	})

	// report fields by their form name so handlers can show errors inline
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// IsPhone accepts 9 to 12 ASCII digits.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsNationalID accepts exactly 12 ASCII digits.
func IsNationalID(s string) bool {
	return nationalIDPattern.MatchString(s)
}

type messenger interface {
	messages() map[string]string
}

// Check validates a form struct. It returns nil or an Errors value.
func Check(form messenger) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := form.messages()
	out := Errors{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := msgs[field]; ok {
			out[field] = msg
		} else {
			out[field] = "invalid value"
		}
	}
	return out
}

// CheckCV validates an uploaded CV by declared content type or file extension and size.
func CheckCV(filename, contentType string, size int64) error {
	ct := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	_, typeOK := cvContentTypes[ct]
	_, extOK := cvExtensions[strings.ToLower(filepath.Ext(filename))]

	if !typeOK && !extOK {
		return Errors{"cv": "Only PDF, DOC and DOCX files are accepted"}
	}
	if size <= 0 {
		return Errors{"cv": "Please upload your CV"}
	}
	if size > MaxCVSize {
		return Errors{"cv": "The file must not exceed 10MB"}
	}
	return nil
}

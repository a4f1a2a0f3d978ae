package downstreams

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds everything needed to talk to the gateway. It is immutable once handed to a
// client; changing base url or credentials means building a new client.
type Config struct {
	BaseUrl  string `validate:"required,baseurl"`
	Login    string `validate:"required"`
	Password string `validate:"required"`
}

const baseUrlPattern = "^https?://.*[^/]$"

var (
	baseUrlRegex = regexp.MustCompile(baseUrlPattern)
	validate     = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("baseurl", func(fl validator.FieldLevel) bool {
		return baseUrlRegex.MatchString(fl.Field().String())
	})
	return v
}

var fieldKeys = map[string]string{
	"BaseUrl":  "base_url",
	"Login":    "login",
	"Password": "password",
}

// Validate returns a *ConfigurationError naming every offending field, or nil.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ConfigurationError{Fields: map[string]string{"config": err.Error()}}
	}

	confErr := &ConfigurationError{Fields: make(map[string]string)}
	for _, fe := range fieldErrs {
		key := fieldKeys[fe.Field()]
		switch fe.Tag() {
		case "required":
			confErr.Fields[key] = "must not be empty"
		case "baseurl":
			confErr.Fields[key] = "base url must start with http:// or https:// and may not end in a /"
		default:
			confErr.Fields[key] = fmt.Sprintf("failed validation %s", fe.Tag())
		}
	}
	return confErr
}

// ConfigurationError is returned before any network activity when the configuration is unusable.
type ConfigurationError struct {
	Fields map[string]string
}

func (e *ConfigurationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "configuration error: " + strings.Join(parts, ", ")
}

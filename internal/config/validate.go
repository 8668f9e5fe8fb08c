package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Valid enum values for configuration fields.
var (
	ValidFilterModes = []string{"substring", "fuzzy"}
	ValidThemeNames  = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes  = []string{"auto", "light", "dark"}
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// validatorInstance returns the shared validator. Field names in errors
// are the TOML keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		if err := registerValidations(v); err != nil {
			panic(fmt.Sprintf("config: register validations: %v", err))
		}

		validateInst = v
	})
	return validateInst
}

// registerValidations adds the custom tags used by Config.
func registerValidations(v *validator.Validate) error {
	// hex (#rgb, #rrggbb) or an ANSI 256 palette index
	return v.RegisterValidation("termcolor", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if hexColorPattern.MatchString(s) {
			return true
		}
		n, err := strconv.Atoi(s)
		return err == nil && n >= 0 && n <= 255
	})
}

// Validate checks cfg against its struct tags and returns the first
// violation as a readable error.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateFilterMode validates a filter mode value against ValidFilterModes.
// Exported for use in CLI flag validation.
func ValidateFilterMode(mode string) error {
	return validateEnum(mode, "filter-mode", ValidFilterModes)
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("invalid config: %w", err)
	}
	fe := ves[0]
	field := fieldName(fe)
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("invalid %s %q: must be %s", field, fmt.Sprint(fe.Value()), formatOptions(strings.Fields(fe.Param())))
	case "min":
		return fmt.Errorf("invalid %s %v: must be at least %s", field, fe.Value(), fe.Param())
	case "max":
		return fmt.Errorf("invalid %s %v: must be at most %s", field, fe.Value(), fe.Param())
	case "termcolor":
		return fmt.Errorf("invalid %s %q: must be a hex color or a number from 0 to 255", field, fmt.Sprint(fe.Value()))
	}
	return fmt.Errorf("invalid %s: failed %q check", field, fe.Tag())
}

// fieldName turns "Config.select.filter_mode" into "select.filter_mode".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

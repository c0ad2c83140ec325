package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"email":       "{field} must be a valid email address",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be at least {param}",
	"max":         "{field} must be at most {param}",
	"oneof":       "{field} must be one of [{param}]",
	"datetime":    "{field} must be a date in the format {param}",
	"uuid":        "{field} must be a valid UUID",
	"url":         "{field} must be a valid URL",
	"nefield":     "{field} must differ from {param}",
	"mimetypes":   "{field} must be one of the types [{param}]",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// message renders the first failed rule that has a template. Slice elements keep
// their index, e.g. "service_ids[1] must be a valid UUID".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
		).Replace(tmpl)
	}

	return valErrors.Error()
}

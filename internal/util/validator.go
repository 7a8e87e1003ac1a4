package util

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fiscalQuarterRegex = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("fiscalquarter", fiscalQuarter)
	validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	validate.RegisterTagNameFunc(queryFieldName)

	return validate
}

func fiscalQuarter(fl validator.FieldLevel) bool {
	return fiscalQuarterRegex.MatchString(fl.Field().String())
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

// queryFieldName reports fields by their query parameter name.
func queryFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("query"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

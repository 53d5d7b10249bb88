package validation

import (
	"regexp"

	"ac-registry/pkg/constants"
	"ac-registry/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var patrimonyRegex = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)

// IsValidPatrimony - 3 a 20 caracteres alfanuméricos, sem espaços.
func IsValidPatrimony(value string) bool {
	return patrimonyRegex.MatchString(value)
}

// registerRules registra as tags usadas nos DTOs
func registerRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"patrimony":         isPatrimony,
		"intervention_type": oneOf(constants.InterventionTypes),
		"flexdate":          isFlexibleDate,
		"flexnumber":        isFlexibleNumber,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isPatrimony(fl validator.FieldLevel) bool {
	return IsValidPatrimony(fl.Field().String())
}

func isFlexibleDate(fl validator.FieldLevel) bool {
	_, err := utils.ParseFlexibleDate(fl.Field().String(), nil)
	return err == nil
}

func isFlexibleNumber(fl validator.FieldLevel) bool {
	_, err := utils.ParseDecimal(fl.Field().String())
	return err == nil
}

func oneOf(options []constants.Option) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return constants.Contains(options, fl.Field().String())
	}
}

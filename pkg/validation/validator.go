package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator - adaptador para o echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implementa echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Engine expõe o validator configurado para quem valida fora do echo (importação).
func (cv *CustomValidator) Engine() *validator.Validate {
	return cv.validator
}

// New cria e configura o validador
func New() *CustomValidator {
	v := validator.New()

	// Erros reportam o nome do campo JSON (ou da coluna CSV), não o nome Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "csv"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	registerNullTypes(v)

	// Sem as regras o servidor não deve subir.
	if err := registerRules(v); err != nil {
		panic("erro ao registrar validadores: " + err.Error())
	}

	return &CustomValidator{validator: v}
}

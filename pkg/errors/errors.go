package errors

import "fmt"

var (
	// Equipamentos
	ErrPatrimonyTaken        = fmt.Errorf("Número de patrimônio já cadastrado.")
	ErrPatrimonyTakenByOther = fmt.Errorf("Número de patrimônio já cadastrado em outro equipamento.")
	ErrEquipmentNotFound     = fmt.Errorf("Equipamento não encontrado.")

	// Intervenções
	ErrInterventionNotFound = fmt.Errorf("Intervenção não encontrada.")

	// Importação
	ErrInvalidImportFile = fmt.Errorf("Arquivo CSV deve conter pelo menos um cabeçalho e uma linha de dados")
	ErrUnsupportedFile   = fmt.Errorf("Por favor, selecione um arquivo CSV ou XLSX.")
	ErrImportNotFound    = fmt.Errorf("Importação não encontrada.")
)

// Tipos de erro customizados
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carrega o código HTTP, a mensagem para o usuário e a causa técnica (só para o log).
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

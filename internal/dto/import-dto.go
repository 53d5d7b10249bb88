package dto

// ImportRowDTO - uma linha da planilha, com os nomes de coluna do template.
type ImportRowDTO struct {
	Patrimony       string `csv:"patrimonio" validate:"required,patrimony"`
	Brand           string `csv:"marca"`
	Model           string `csv:"modelo"`
	SerialNumber    string `csv:"numeroSerie"`
	InitialLocation string `csv:"localInicial" validate:"required"`
	Weight          string `csv:"peso" validate:"omitempty,flexnumber"`
	Color           string `csv:"cor"`
	Power           string `csv:"potencia" validate:"omitempty,flexnumber"`
	Capacity        string `csv:"capacidade" validate:"omitempty,flexnumber"`
	Voltage         string `csv:"voltagem"`
	Category        string `csv:"tipo"`
	Notes           string `csv:"observacoes"`
	EntryDate       string `csv:"dataEntrada" validate:"omitempty,flexdate"`
}

type ImportRowError struct {
	Row   int               `json:"row"`
	Error string            `json:"error"`
	Data  map[string]string `json:"data"`
}

type ImportResultDTO struct {
	Success int              `json:"success"`
	Errors  []ImportRowError `json:"errors"`
	Total   int              `json:"total"`
}

// ImportJobDTO - estado de uma importação assíncrona.
type ImportJobDTO struct {
	ID       string           `json:"id"`
	FileName string           `json:"file_name"`
	Progress int              `json:"progress"`
	Done     bool             `json:"done"`
	Error    string           `json:"error,omitempty"`
	Result   *ImportResultDTO `json:"result,omitempty"`
}

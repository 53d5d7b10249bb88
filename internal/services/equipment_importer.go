package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"ac-registry/internal/dto"
	apperrors "ac-registry/pkg/errors"
	"ac-registry/pkg/utils"
)

// ImportColumns - cabeçalho do template de importação, na ordem.
var ImportColumns = []string{
	"patrimonio", "marca", "modelo", "numeroSerie", "localInicial", "peso", "cor",
	"potencia", "capacidade", "voltagem", "tipo", "observacoes", "dataEntrada",
}

var importTemplateExample = []string{
	"AC001", "Samsung", "AR12TRHQCWK", "SN12345678", "Sala 101", "12.5", "branco",
	"1500", "12000", "220", "split", "Equipamento novo", "2024-01-15",
}

// Mensagens por coluna, na ordem em que são verificadas.
var importFieldMessages = map[string]string{
	"patrimonio":   "Patrimônio inválido ou ausente",
	"localInicial": "Local inicial é obrigatório",
	"peso":         "Peso deve ser um número",
	"potencia":     "Potência deve ser um número",
	"capacidade":   "Capacidade deve ser um número",
	"dataEntrada":  "Data de entrada inválida",
}

const utf8BOM = "\uFEFF"

// ImportRecord - linha lida do arquivo. Line é a linha no arquivo (cabeçalho = 1).
type ImportRecord struct {
	Line   int
	Values map[string]string
}

type ImportProgressFunc func(percent int)

type EquipmentImporter struct {
	equipmentService EquipmentServiceInterface
	locationService  LocationServiceInterface
	validate         *validator.Validate
	logger           *zap.Logger
}

func NewEquipmentImporter(
	equipmentService EquipmentServiceInterface,
	locationService LocationServiceInterface,
	validate *validator.Validate,
	logger *zap.Logger,
) *EquipmentImporter {
	return &EquipmentImporter{
		equipmentService: equipmentService,
		locationService:  locationService,
		validate:         validate,
		logger:           logger,
	}
}

// Parse escolhe o leitor pela extensão do arquivo.
func (i *EquipmentImporter) Parse(fileName string, data []byte) ([]ImportRecord, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return ParseCSV(data)
	case ".xlsx":
		return ParseXLSX(data)
	default:
		return nil, apperrors.ErrUnsupportedFile
	}
}

// ParseCSV lê o arquivo respeitando aspas (vírgulas e aspas dentro de campos).
func ParseCSV(data []byte) ([]ImportRecord, error) {
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.ErrInvalidImportFile
	}
	if err != nil {
		return nil, apperrors.NewInvalidInputError("Arquivo CSV inválido: %v", err)
	}
	header = normalizeHeader(header)

	var records []ImportRecord
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewInvalidInputError("Arquivo CSV inválido: %v", err)
		}
		line, _ := r.FieldPos(0)
		records = append(records, ImportRecord{Line: line, Values: zipRow(header, fields)})
	}

	if len(records) == 0 {
		return nil, apperrors.ErrInvalidImportFile
	}
	return records, nil
}

// ParseXLSX lê a primeira planilha; linhas totalmente vazias são ignoradas.
func ParseXLSX(data []byte) ([]ImportRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewInvalidInputError("Arquivo XLSX inválido: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrInvalidImportFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewInvalidInputError("Arquivo XLSX inválido: %v", err)
	}
	if len(rows) < 2 {
		return nil, apperrors.ErrInvalidImportFile
	}

	header := normalizeHeader(rows[0])
	var records []ImportRecord
	for idx, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, ImportRecord{Line: idx + 2, Values: zipRow(header, row)})
	}

	if len(records) == 0 {
		return nil, apperrors.ErrInvalidImportFile
	}
	return records, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.Trim(strings.TrimSpace(h), `"`)
	}
	if len(out) > 0 {
		out[0] = strings.TrimPrefix(out[0], utf8BOM)
	}
	return out
}

// zipRow - colunas ausentes viram "".
func zipRow(header, fields []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if i < len(fields) {
			row[h] = strings.TrimSpace(fields[i])
		} else {
			row[h] = ""
		}
	}
	return row
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Import grava as linhas uma a uma, na ordem do arquivo. Erros de linha não interrompem o lote.
func (i *EquipmentImporter) Import(ctx context.Context, records []ImportRecord, progress ImportProgressFunc) *dto.ImportResultDTO {
	result := &dto.ImportResultDTO{Errors: []dto.ImportRowError{}, Total: len(records)}

	known := make(map[string]struct{})
	if existing, err := i.locationService.List(ctx); err != nil {
		i.logger.Warn("Não foi possível carregar os locais existentes", zap.Error(err))
	} else {
		for _, l := range existing {
			known[l.Name] = struct{}{}
		}
	}

	for n, rec := range records {
		if msg := i.importRecord(ctx, rec, known); msg != "" {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rec.Line, Error: msg, Data: rec.Values})
		} else {
			result.Success++
		}

		if progress != nil {
			progress(int(math.Round(float64(n+1) / float64(len(records)) * 100)))
		}
	}

	i.logger.Info("Importação concluída",
		zap.Int("total", result.Total),
		zap.Int("success", result.Success),
		zap.Int("errors", len(result.Errors)),
	)
	return result
}

// importRecord devolve a mensagem de erro da linha, ou "" em caso de sucesso.
func (i *EquipmentImporter) importRecord(ctx context.Context, rec ImportRecord, known map[string]struct{}) string {
	row := rowFromValues(rec.Values)

	if msgs := i.validateRow(row, rec.Line); len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}

	if _, ok := known[row.InitialLocation]; !ok {
		if _, err := i.locationService.Create(ctx, row.InitialLocation); err != nil {
			i.logger.Error("Erro ao adicionar local", zap.String("location", row.InitialLocation), zap.Error(err))
		} else {
			known[row.InitialLocation] = struct{}{}
		}
	}

	if _, err := i.equipmentService.Create(ctx, createDTOFromRow(row)); err != nil {
		return importErrorMessage(err)
	}
	return ""
}

func (i *EquipmentImporter) validateRow(row dto.ImportRowDTO, line int) []string {
	err := i.validate.Struct(row)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("Linha %d: %v", line, err)}
	}

	msgs := make([]string, 0, len(fieldErrs))
	seen := make(map[string]bool)
	for _, fe := range fieldErrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true

		msg, ok := importFieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("Campo %s inválido", fe.Field())
		}
		msgs = append(msgs, fmt.Sprintf("Linha %d: %s", line, msg))
	}
	return msgs
}

func importErrorMessage(err error) string {
	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	if _, known := utils.StatusForError(err); known {
		return err.Error()
	}
	return "Ocorreu um erro ao salvar o equipamento."
}

func rowFromValues(v map[string]string) dto.ImportRowDTO {
	return dto.ImportRowDTO{
		Patrimony:       v["patrimonio"],
		Brand:           v["marca"],
		Model:           v["modelo"],
		SerialNumber:    v["numeroSerie"],
		InitialLocation: v["localInicial"],
		Weight:          v["peso"],
		Color:           v["cor"],
		Power:           v["potencia"],
		Capacity:        v["capacidade"],
		Voltage:         v["voltagem"],
		Category:        v["tipo"],
		Notes:           v["observacoes"],
		EntryDate:       v["dataEntrada"],
	}
}

func createDTOFromRow(row dto.ImportRowDTO) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		Patrimony:       row.Patrimony,
		Brand:           optionalString(row.Brand),
		Model:           optionalString(row.Model),
		SerialNumber:    optionalString(row.SerialNumber),
		InitialLocation: row.InitialLocation,
		Weight:          optionalFloat(row.Weight),
		Color:           optionalString(row.Color),
		Power:           optionalFloat(row.Power),
		Capacity:        optionalFloat(row.Capacity),
		Voltage:         optionalString(row.Voltage),
		Category:        optionalString(row.Category),
		Notes:           optionalString(row.Notes),
		EntryDate:       row.EntryDate,
	}
}

func optionalString(s string) null.String {
	return null.NewString(s, s != "")
}

func optionalFloat(s string) null.Float64 {
	if s == "" {
		return null.Float64{}
	}
	f, err := utils.ParseDecimal(s)
	return null.NewFloat64(f, err == nil)
}

// ImportTemplateCSV - cabeçalho e uma linha de exemplo.
func ImportTemplateCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll([][]string{ImportColumns, importTemplateExample}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

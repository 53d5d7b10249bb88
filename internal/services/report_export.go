package services

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ac-registry/internal/entities"
	"ac-registry/pkg/utils"
)

// Colunas fixas da exportação CSV.
var exportCSVHeaders = []string{"Data", "Patrimônio", "Tipo", "Descrição", "Responsável"}

var exportXLSXHeaders = []string{
	"Data", "Patrimônio", "Tipo", "Descrição", "Responsável",
	"Término", "Origem", "Destino", "Custo", "Observações",
}

const exportSheet = "Consulta"

// WriteInterventionsCSV grava a consulta no formato da planilha de exportação:
// descrição sempre entre aspas (com "" para aspas internas), demais campos sem aspas.
func WriteInterventionsCSV(w io.Writer, list []entities.Intervention, loc *time.Location) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(exportCSVHeaders, ",")); err != nil {
		return err
	}
	for _, iv := range list {
		fields := []string{
			iv.StartDate.In(loc).Format(utils.DateLayoutBR),
			iv.Patrimony,
			iv.Type.String(),
			`"` + strings.ReplaceAll(iv.Description.String, `"`, `""`) + `"`,
			iv.Responsible.String,
		}
		if _, err := bw.WriteString("\n" + strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteInterventionsXLSX - mesma consulta com todas as colunas e o rótulo do tipo.
func WriteInterventionsXLSX(w io.Writer, list []entities.Intervention, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportXLSXHeaders); err != nil {
		return err
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(exportSheet, "A1", "J1", style)

	for i, iv := range list {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := interventionToRow(iv, loc)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "C", 18)
	_ = f.SetColWidth(exportSheet, "D", "D", 45)
	_ = f.SetColWidth(exportSheet, "E", "H", 20)
	_ = f.SetColWidth(exportSheet, "J", "J", 40)

	return f.Write(w)
}

func interventionToRow(iv entities.Intervention, loc *time.Location) []interface{} {
	var end string
	if iv.EndDate.Valid {
		end = iv.EndDate.Time.In(loc).Format(utils.DateLayoutBR)
	}
	return []interface{}{
		iv.StartDate.In(loc).Format(utils.DateLayoutBR),
		iv.Patrimony,
		iv.Type.Label(),
		iv.Description.String,
		iv.Responsible.String,
		end,
		iv.Origin.String,
		iv.Destination.String,
		iv.Cost,
		iv.Notes.String,
	}
}

package dto

import (
	"encoding/json"
	"strings"

	"github.com/aarondl/null/v8"

	"ac-registry/pkg/utils"
)

type CreateInterventionDTO struct {
	Patrimony   string       `json:"patrimony" validate:"required,patrimony"`
	Type        string       `json:"type" validate:"required,intervention_type"`
	Description null.String  `json:"description"`
	StartDate   string       `json:"start_date" validate:"omitempty,flexdate"`
	EndDate     string       `json:"end_date" validate:"omitempty,flexdate"`
	Origin      null.String  `json:"origin"`
	Destination null.String  `json:"destination"`
	Cost        null.Float64 `json:"cost" validate:"omitempty,gte=0"`
	Responsible null.String  `json:"responsible"`
	Notes       null.String  `json:"notes"`
}

// RegisterInterventionRequest - corpo da rota /api/intervencoes/registrar (nomes usados pela agenda).
type RegisterInterventionRequest struct {
	Patrimony   string        `json:"patrimonio"`
	Type        string        `json:"tipo"`
	Description string        `json:"descricao"`
	StartDate   string        `json:"dataInicio"`
	EndDate     string        `json:"dataTermino"`
	Origin      string        `json:"localOrigem"`
	Destination string        `json:"localDestino"`
	Cost        FlexibleFloat `json:"custo"`
	Responsible string        `json:"responsavel"`
	Notes       string        `json:"observacoes"`
}

// FlexibleFloat aceita o custo como número ou como texto ("150", "150.5").
// Texto vazio ou null equivalem a ausente.
type FlexibleFloat null.Float64

func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	var v null.Float64
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) != "" {
			n, err := utils.ParseDecimal(raw)
			if err != nil {
				return err
			}
			v = null.Float64From(n)
		}
	} else if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = FlexibleFloat(v)
	return nil
}

// ToCreateDTO converte strings vazias em ausentes, como o formulário da agenda.
func (r RegisterInterventionRequest) ToCreateDTO() CreateInterventionDTO {
	return CreateInterventionDTO{
		Patrimony:   r.Patrimony,
		Type:        r.Type,
		Description: nullIfEmpty(r.Description),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Origin:      nullIfEmpty(r.Origin),
		Destination: nullIfEmpty(r.Destination),
		Cost:        null.Float64(r.Cost),
		Responsible: nullIfEmpty(r.Responsible),
		Notes:       nullIfEmpty(r.Notes),
	}
}

// ScheduledEventDTO - evento da agenda.
type ScheduledEventDTO struct {
	ID                 string  `json:"id"`
	Type               string  `json:"tipo"`
	Description        *string `json:"descricao"`
	ScheduledDate      string  `json:"dataProgramada"`
	BaseInterventionID string  `json:"baseIntervencaoId"`
}

func nullIfEmpty(s string) null.String {
	return null.NewString(s, s != "")
}

package entities

import (
	"time"

	"ac-registry/pkg/constants"

	"github.com/aarondl/null/v8"
)

// Intervention - linha da tabela intervencoes. Não é alterada depois de criada.
type Intervention struct {
	ID          uint64                     `json:"id" db:"id"`
	Patrimony   string                     `json:"patrimony" db:"patrimonio"`
	Type        constants.InterventionType `json:"type" db:"tipo"`
	Description null.String                `json:"description" db:"descricao"`
	StartDate   time.Time                  `json:"start_date" db:"data_inicio"`
	EndDate     null.Time                  `json:"end_date" db:"data_termino"`
	Origin      null.String                `json:"origin" db:"local_origem"`
	Destination null.String                `json:"destination" db:"local_destino"`
	Cost        float64                    `json:"cost" db:"custo"`
	Responsible null.String                `json:"responsible" db:"responsavel"`
	Notes       null.String                `json:"notes" db:"observacoes"`
	CreatedAt   time.Time                  `json:"created_at" db:"created_at"`
}

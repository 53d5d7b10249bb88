package entities

import (
	"time"

	"ac-registry/pkg/types"

	"github.com/aarondl/null/v8"
)

// Equipment - linha da tabela equipamentos.
type Equipment struct {
	ID           uint64       `json:"id" db:"id"`
	Patrimony    string       `json:"patrimony" db:"patrimonio"`
	Brand        null.String  `json:"brand" db:"marca"`
	Model        null.String  `json:"model" db:"modelo"`
	SerialNumber null.String  `json:"serial_number" db:"numero_serie"`
	InitialPlace string       `json:"initial_location" db:"local_inicial"`
	Weight       null.Float64 `json:"weight" db:"peso"`
	Color        null.String  `json:"color" db:"cor"`
	Power        null.Float64 `json:"power" db:"potencia"`
	Capacity     null.Float64 `json:"capacity" db:"capacidade"`
	Voltage      null.String  `json:"voltage" db:"voltagem"`
	Category     null.String  `json:"category" db:"tipo"`
	Notes        null.String  `json:"notes" db:"observacoes"`
	EntryDate    time.Time    `json:"entry_date" db:"data_entrada"`

	types.BaseEntity
}

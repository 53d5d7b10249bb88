package dto

import (
	"time"

	"ac-registry/internal/entities"
	"ac-registry/internal/query"
)

// DashboardDTO - indicadores do painel de consultas e a lista filtrada.
type DashboardDTO struct {
	Criteria      query.Criteria          `json:"criteria"`
	Stats         query.Stats             `json:"stats"`
	Interventions []entities.Intervention `json:"interventions"`
	Count         int                     `json:"count"`
	LoadedAt      time.Time               `json:"loaded_at"`
}

// OptionsDTO - tabelas de valores usadas pelos formulários e filtros.
type OptionsDTO struct {
	InterventionTypes interface{} `json:"intervention_types"`
	Categories        interface{} `json:"categories"`
	Voltages          interface{} `json:"voltages"`
	Colors            interface{} `json:"colors"`
	Locations         interface{} `json:"locations"`
}

package types

import "time"

// Filter - parâmetros de busca e paginação das listagens.
type Filter struct {
	Search    string     `json:"search,omitempty"`
	Patrimony string     `json:"patrimony,omitempty"`
	Types     []string   `json:"types,omitempty"`
	DateFrom  *time.Time `json:"date_from,omitempty"`
	DateTo    *time.Time `json:"date_to,omitempty"`
	Limit     uint64     `json:"limit"`
	Offset    uint64     `json:"offset"`
	Page      uint64     `json:"page"`
}

// http://localhost:8080/api/equipment?search=samsung&limit=20&page=2
// http://localhost:8080/api/interventions?patrimony=AC001&types=reserva,movimentacao&date_from=2024-01-01

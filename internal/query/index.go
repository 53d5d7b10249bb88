package query

import (
	"time"

	"ac-registry/internal/entities"
)

// EquipmentIndex liga patrimônio -> equipamento. Montado uma vez por carga de dados.
type EquipmentIndex map[string]*entities.Equipment

func NewEquipmentIndex(list []entities.Equipment) EquipmentIndex {
	idx := make(EquipmentIndex, len(list))
	for i := range list {
		idx[list[i].Patrimony] = &list[i]
	}
	return idx
}

func (idx EquipmentIndex) Lookup(patrimony string) (*entities.Equipment, bool) {
	eq, ok := idx[patrimony]
	return eq, ok
}

// Snapshot - conjunto completo carregado do banco; substituído por inteiro a cada recarga.
type Snapshot struct {
	Equipment     []entities.Equipment    `json:"equipment"`
	Interventions []entities.Intervention `json:"interventions"`
	LoadedAt      time.Time               `json:"loaded_at"`

	index EquipmentIndex
}

func NewSnapshot(equipment []entities.Equipment, interventions []entities.Intervention, loadedAt time.Time) *Snapshot {
	s := &Snapshot{Equipment: equipment, Interventions: interventions, LoadedAt: loadedAt}
	s.index = NewEquipmentIndex(s.Equipment)
	return s
}

// Index devolve o índice, montando-o se o snapshot veio do cache.
func (s *Snapshot) Index() EquipmentIndex {
	if s.index == nil {
		s.index = NewEquipmentIndex(s.Equipment)
	}
	return s.index
}

package events

const (
	EquipmentSavedName    = "equipment.saved"
	InterventionSavedName = "intervention.saved"
)

// EquipmentSavedEvent - equipamento criado ou atualizado.
type EquipmentSavedEvent struct {
	ID        uint64
	Patrimony string
	Created   bool
}

func (e EquipmentSavedEvent) Name() string { return EquipmentSavedName }

// InterventionSavedEvent - intervenção registrada.
type InterventionSavedEvent struct {
	ID        uint64
	Patrimony string
	Type      string
}

func (e InterventionSavedEvent) Name() string { return InterventionSavedName }

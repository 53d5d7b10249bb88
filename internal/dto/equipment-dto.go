package dto

import (
	"github.com/aarondl/null/v8"
)

// CreateEquipmentDTO - mesmo formato para o formulário, o JSON e cada linha importada.
type CreateEquipmentDTO struct {
	Patrimony       string       `json:"patrimony" validate:"required,patrimony"`
	Brand           null.String  `json:"brand"`
	Model           null.String  `json:"model"`
	SerialNumber    null.String  `json:"serial_number"`
	InitialLocation string       `json:"initial_location" validate:"required"`
	Weight          null.Float64 `json:"weight" validate:"omitempty,gte=0"`
	Color           null.String  `json:"color"`
	Power           null.Float64 `json:"power" validate:"omitempty,gte=0"`
	Capacity        null.Float64 `json:"capacity" validate:"omitempty,gte=0"`
	Voltage         null.String  `json:"voltage"`
	Category        null.String  `json:"category"`
	Notes           null.String  `json:"notes"`
	EntryDate       string       `json:"entry_date" validate:"omitempty,flexdate"`
}

// UpdateEquipmentDTO substitui todos os campos, como o formulário de edição.
type UpdateEquipmentDTO CreateEquipmentDTO

// EquipmentDetailsDTO - equipamento com o local atual e o histórico.
type EquipmentDetailsDTO struct {
	Equipment       interface{} `json:"equipment"`
	CurrentLocation string      `json:"current_location"`
	Active          bool        `json:"active"`
	Interventions   interface{} `json:"interventions"`
}

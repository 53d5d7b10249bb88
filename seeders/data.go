package seeders

import "time"

var locationsData = []string{
	"Sala 101",
	"Sala 102",
	"Recepção",
	"Almoxarifado",
	"Escritório Administrativo",
}

type demoEquipment struct {
	Patrimony string
	Brand     string
	Model     string
	Location  string
	Power     float64
	Voltage   string
	Category  string
}

var demoEquipmentData = []demoEquipment{
	{Patrimony: "AC12345", Brand: "LG", Model: "Dual Inverter", Location: "Sala 101", Power: 12000, Voltage: "220", Category: "split"},
	{Patrimony: "AC67890", Brand: "Samsung", Model: "WindFree", Location: "Sala 102", Power: 9000, Voltage: "220", Category: "split"},
	{Patrimony: "AC54321", Brand: "Springer", Model: "Midea", Location: "Recepção", Power: 18000, Voltage: "bivolt", Category: "piso-teto"},
	{Patrimony: "AC98765", Brand: "Consul", Model: "Janela", Location: "Almoxarifado", Power: 7500, Voltage: "110", Category: "janela"},
}

type demoIntervention struct {
	Patrimony   string
	Type        string
	Description string
	DaysAgo     int
	Duration    time.Duration
	Origin      string
	Destination string
	Cost        float64
	Responsible string
}

// DaysAgo negativo gera agendamentos futuros.
var demoInterventionsData = []demoIntervention{
	{Patrimony: "AC12345", Type: "manutencao-preventiva", Description: "Limpeza de filtros", DaysAgo: 60, Duration: 2 * time.Hour, Cost: 150, Responsible: "Carlos"},
	{Patrimony: "AC12345", Type: "reclamacao", Description: "Aparelho pingando", DaysAgo: 20, Cost: 0, Responsible: "Recepção"},
	{Patrimony: "AC67890", Type: "manutencao-corretiva", Description: "Troca do capacitor", DaysAgo: 15, Cost: 320, Responsible: "Carlos"},
	{Patrimony: "AC54321", Type: "movimentacao", Description: "Mudança de sala", DaysAgo: 10, Origin: "Recepção", Destination: "Sala 102", Responsible: "Ana"},
	{Patrimony: "AC98765", Type: "desinstalacao", Description: "Aparelho retirado", DaysAgo: 5, Origin: "Almoxarifado", Responsible: "Ana"},
	{Patrimony: "AC67890", Type: "reserva", Description: "Reunião da diretoria", DaysAgo: -3, Duration: 4 * time.Hour, Responsible: "Diretoria"},
}

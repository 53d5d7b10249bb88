// pkg/constants/constants.go
package constants

// Option é um par valor/rótulo usado pelos formulários e pela formatação.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

//============== TIPOS DE INTERVENÇÃO ==============

// InterventionType é o valor persistido na coluna intervencoes.tipo.
type InterventionType string

const (
	InterventionComplaint             InterventionType = "reclamacao"
	InterventionPreventiveMaintenance InterventionType = "manutencao-preventiva"
	InterventionCorrectiveMaintenance InterventionType = "manutencao-corretiva"
	InterventionReservation           InterventionType = "reserva"
	InterventionRelocation            InterventionType = "movimentacao"
	InterventionUninstall             InterventionType = "desinstalacao"
)

// InterventionTypes é a única tabela de tipos: formulários, filtros e relatórios leem daqui.
var InterventionTypes = []Option{
	{Value: string(InterventionComplaint), Label: "Reclamação"},
	{Value: string(InterventionPreventiveMaintenance), Label: "Manutenção Preventiva"},
	{Value: string(InterventionCorrectiveMaintenance), Label: "Manutenção Corretiva"},
	{Value: string(InterventionReservation), Label: "Reserva"},
	{Value: string(InterventionRelocation), Label: "Movimentação"},
	{Value: string(InterventionUninstall), Label: "Desinstalação"},
}

func (t InterventionType) String() string {
	return string(t)
}

// Label devolve o rótulo do tipo; valores desconhecidos passam sem formatação.
func (t InterventionType) Label() string {
	return LabelOf(InterventionTypes, string(t))
}

// IsMaintenance indica manutenção preventiva ou corretiva.
func (t InterventionType) IsMaintenance() bool {
	return t == InterventionPreventiveMaintenance || t == InterventionCorrectiveMaintenance
}

// IsValidInterventionType verifica se o valor pertence à enumeração.
func IsValidInterventionType(value string) bool {
	return Contains(InterventionTypes, value)
}

// InterventionTypeOrder devolve a posição do tipo na tabela, ou -1.
func InterventionTypeOrder(value string) int {
	for i, o := range InterventionTypes {
		if o.Value == value {
			return i
		}
	}
	return -1
}

//============== EQUIPAMENTOS ==============

var EquipmentCategories = []Option{
	{Value: "split", Label: "Split"},
	{Value: "janela", Label: "Janela"},
	{Value: "cassete", Label: "Cassete"},
	{Value: "piso-teto", Label: "Piso-Teto"},
	{Value: "portatil", Label: "Portátil"},
}

var Voltages = []Option{
	{Value: "110", Label: "110V"},
	{Value: "220", Label: "220V"},
	{Value: "bivolt", Label: "Bivolt"},
}

var Colors = []Option{
	{Value: "branco", Label: "Branco"},
	{Value: "preto", Label: "Preto"},
	{Value: "prata", Label: "Prata"},
	{Value: "bege", Label: "Bege"},
}

//============== MESES ==============

// MonthNames são os rótulos dos buckets mensais do painel.
var MonthNames = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

//============== HELPERS ==============

func Contains(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func LabelOf(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

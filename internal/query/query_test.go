package query

import (
	"testing"
	"time"
	_ "time/tzdata"

	"ac-registry/internal/entities"
	"ac-registry/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func sampleEquipment() []entities.Equipment {
	return []entities.Equipment{
		{ID: 1, Patrimony: "AC001", Brand: null.StringFrom("Samsung"), Power: null.Float64From(1500), InitialPlace: "Sala 101"},
		{ID: 2, Patrimony: "AC002", Brand: null.StringFrom("LG"), Power: null.Float64From(12.5), InitialPlace: "Recepção"},
		{ID: 3, Patrimony: "XB777", InitialPlace: "Almoxarifado"},
	}
}

func sampleInterventions() []entities.Intervention {
	return []entities.Intervention{
		{ID: 1, Patrimony: "AC001", Type: constants.InterventionPreventiveMaintenance, StartDate: date(2024, time.January, 10, 9, 0), Cost: 100},
		{ID: 2, Patrimony: "AC001", Type: constants.InterventionCorrectiveMaintenance, StartDate: date(2024, time.January, 20, 14, 0), EndDate: null.TimeFrom(date(2024, time.January, 21, 0, 0)), Cost: 50},
		{ID: 3, Patrimony: "AC002", Type: constants.InterventionRelocation, StartDate: date(2024, time.February, 5, 8, 0), Origin: null.StringFrom("Recepção"), Destination: null.StringFrom("Sala 102"), Cost: 200},
		{ID: 4, Patrimony: "XB777", Type: constants.InterventionComplaint, StartDate: date(2024, time.March, 31, 23, 59), Cost: 0},
		{ID: 5, Patrimony: "ZZ999", Type: constants.InterventionUninstall, StartDate: date(2024, time.March, 1, 10, 0), Origin: null.StringFrom("Sala 101"), Cost: 10},
	}
}

func ids(list []entities.Intervention) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, iv := range list {
		out = append(out, iv.ID)
	}
	return out
}

func TestFilterInterventions_EmptyCriteriaReturnsInput(t *testing.T) {
	list := sampleInterventions()
	idx := NewEquipmentIndex(sampleEquipment())

	got := FilterInterventions(list, idx, Criteria{})
	assert.Equal(t, list, got)
	assert.True(t, Criteria{}.IsEmpty())
}

func TestFilterInterventions_Predicates(t *testing.T) {
	list := sampleInterventions()
	idx := NewEquipmentIndex(sampleEquipment())

	testCases := []struct {
		name     string
		criteria Criteria
		want     []uint64
	}{
		{"patrimônio sem diferenciar maiúsculas", Criteria{Patrimony: "ac0"}, []uint64{1, 2, 3}},
		{"conjunto de tipos", Criteria{Types: []string{"manutencao-preventiva", "reclamacao"}}, []uint64{1, 4}},
		{"local de origem ou destino", Criteria{Locations: []string{"Sala 102", "Sala 101"}}, []uint64{3, 5}},
		{"marca via índice", Criteria{Brand: "sams"}, []uint64{1, 2}},
		{"potência decimal", Criteria{Power: "12.5"}, []uint64{3}},
		{"potência inteira", Criteria{Power: "150"}, []uint64{1, 2}},
		{"equipamento ausente exclui filtro de marca", Criteria{Brand: "a"}, []uint64{1, 2}},
		{"conjunção", Criteria{Patrimony: "AC001", Types: []string{"manutencao-corretiva"}}, []uint64{2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterInterventions(list, idx, tc.criteria)))
		})
	}
}

func TestFilterInterventions_InclusiveDateBounds(t *testing.T) {
	list := sampleInterventions()
	idx := NewEquipmentIndex(sampleEquipment())

	from := date(2024, time.January, 20, 0, 0)
	to := date(2024, time.March, 31, 0, 0)
	got := FilterInterventions(list, idx, Criteria{From: &from, To: &to})

	// 20/01 14:00 entra pelo início do dia, 31/03 23:59 entra pelo fim do dia.
	assert.Equal(t, []uint64{2, 3, 4, 5}, ids(got))

	sameDay := date(2024, time.January, 10, 17, 30)
	got = FilterInterventions(list, idx, Criteria{From: &sameDay, To: &sameDay})
	assert.Equal(t, []uint64{1}, ids(got))
}

func TestFilterInterventions_IsSubsetPreservingOrder(t *testing.T) {
	list := sampleInterventions()
	idx := NewEquipmentIndex(sampleEquipment())

	got := FilterInterventions(list, idx, Criteria{Types: []string{"reclamacao", "manutencao-preventiva", "desinstalacao"}})
	require.Len(t, got, 3)

	pos := -1
	for _, iv := range got {
		found := false
		for i := pos + 1; i < len(list); i++ {
			if list[i].ID == iv.ID {
				pos, found = i, true
				break
			}
		}
		assert.True(t, found, "intervenção %d fora de ordem ou ausente da entrada", iv.ID)
	}
}

func TestFilterEquipment(t *testing.T) {
	list := sampleEquipment()

	assert.Len(t, FilterEquipment(list, Criteria{}), 3)
	assert.Len(t, FilterEquipment(list, Criteria{Brand: "lg"}), 1)
	assert.Len(t, FilterEquipment(list, Criteria{Locations: []string{"Almoxarifado"}}), 1)
	// Tipos não se aplicam ao cadastro de equipamentos.
	assert.Len(t, FilterEquipment(list, Criteria{Types: []string{"reserva"}}), 3)
}

func TestAggregate_MonthlyCollapsed(t *testing.T) {
	interventions := []entities.Intervention{
		{ID: 1, Type: constants.InterventionComplaint, StartDate: date(2024, time.January, 15, 10, 0), Cost: 100},
		{ID: 2, Type: constants.InterventionComplaint, StartDate: date(2024, time.January, 20, 10, 0), Cost: 50},
		{ID: 3, Type: constants.InterventionComplaint, StartDate: date(2024, time.February, 3, 10, 0), Cost: 200},
	}

	stats := Aggregate(interventions, nil, Options{})

	require.Len(t, stats.MonthlyCosts, 12)
	assert.Equal(t, "Jan", stats.MonthlyCosts[0].Label)
	assert.Equal(t, 150.0, stats.MonthlyCosts[0].Value)
	assert.Equal(t, 200.0, stats.MonthlyCosts[1].Value)
	for _, b := range stats.MonthlyCosts[2:] {
		assert.Zero(t, b.Value)
	}
	assert.Equal(t, 350.0, stats.TotalCost)
}

func TestAggregate_CollapsesYears(t *testing.T) {
	interventions := []entities.Intervention{
		{ID: 1, Type: constants.InterventionComplaint, StartDate: date(2023, time.May, 1, 10, 0), Cost: 10},
		{ID: 2, Type: constants.InterventionComplaint, StartDate: date(2024, time.May, 1, 10, 0), Cost: 20},
	}

	stats := Aggregate(interventions, nil, Options{})
	assert.Equal(t, 30.0, stats.MonthlyCosts[4].Value)
	assert.False(t, stats.SplitYears)
}

func TestAggregate_SplitYears(t *testing.T) {
	interventions := []entities.Intervention{
		{ID: 1, Type: constants.InterventionComplaint, StartDate: date(2024, time.February, 1, 10, 0), Cost: 20},
		{ID: 2, Type: constants.InterventionComplaint, StartDate: date(2023, time.November, 1, 10, 0), Cost: 10},
	}

	stats := Aggregate(interventions, nil, Options{SplitYears: true})

	require.Len(t, stats.MonthlyCosts, 4)
	assert.Equal(t, "Nov/2023", stats.MonthlyCosts[0].Label)
	assert.Equal(t, 10.0, stats.MonthlyCosts[0].Value)
	assert.Equal(t, 2024, stats.MonthlyCosts[3].Year)
	assert.Equal(t, 2, stats.MonthlyCosts[3].Month)
	assert.Equal(t, 20.0, stats.MonthlyCosts[3].Value)

	assert.Empty(t, Aggregate(nil, nil, Options{SplitYears: true}).MonthlyCosts)
}

func TestAggregate_BucketsSumToTotal(t *testing.T) {
	list := sampleInterventions()

	for _, split := range []bool{false, true} {
		stats := Aggregate(list, nil, Options{SplitYears: split})
		var sum float64
		for _, b := range stats.MonthlyCosts {
			sum += b.Value
		}
		assert.InDelta(t, stats.TotalCost, sum, 1e-9)
	}
}

func TestAggregate_MonthUsesConfiguredLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01/02 01:00 UTC ainda é 31/01 em São Paulo.
	interventions := []entities.Intervention{
		{ID: 1, Type: constants.InterventionComplaint, StartDate: date(2024, time.February, 1, 1, 0), Cost: 70},
	}

	stats := Aggregate(interventions, nil, Options{Location: loc})
	assert.Equal(t, 70.0, stats.MonthlyCosts[0].Value)
}

func TestAggregate_CountsAndPending(t *testing.T) {
	list := sampleInterventions()
	equipment := sampleEquipment()

	stats := Aggregate(list, equipment, Options{})

	assert.Equal(t, 3, stats.TotalEquipment)
	assert.Equal(t, 1, stats.PendingMaintenance)
	assert.Equal(t, 360.0, stats.TotalCost)

	total := 0
	for _, m := range stats.ByType {
		total += m.Count
	}
	assert.Equal(t, len(list), total)
}

func TestAggregate_ByTypeOrderingAndLabels(t *testing.T) {
	interventions := []entities.Intervention{
		{ID: 1, Type: "zz-legado", StartDate: date(2024, time.January, 1, 0, 0), Cost: 5},
		{ID: 2, Type: constants.InterventionUninstall, StartDate: date(2024, time.January, 1, 0, 0), Cost: 10},
		{ID: 3, Type: constants.InterventionComplaint, StartDate: date(2024, time.January, 1, 0, 0), Cost: 30},
		{ID: 4, Type: constants.InterventionComplaint, StartDate: date(2024, time.January, 2, 0, 0), Cost: 10},
		{ID: 5, Type: "aa-legado", StartDate: date(2024, time.January, 1, 0, 0), Cost: 0},
	}

	stats := Aggregate(interventions, nil, Options{})

	require.Len(t, stats.ByType, 4)
	assert.Equal(t, "reclamacao", stats.ByType[0].Type)
	assert.Equal(t, "Reclamação", stats.ByType[0].Label)
	assert.Equal(t, 2, stats.ByType[0].Count)
	assert.Equal(t, 20.0, stats.ByType[0].AverageCost)
	assert.Equal(t, "desinstalacao", stats.ByType[1].Type)
	assert.Equal(t, "aa-legado", stats.ByType[2].Label)
	assert.Equal(t, "zz-legado", stats.ByType[3].Type)
}

func TestAggregate_ActiveInactive(t *testing.T) {
	equipment := sampleEquipment()
	history := []entities.Intervention{
		{ID: 1, Patrimony: "AC001", Type: constants.InterventionUninstall, StartDate: date(2024, time.January, 1, 0, 0)},
		{ID: 2, Patrimony: "AC002", Type: constants.InterventionUninstall, StartDate: date(2024, time.January, 1, 0, 0)},
		{ID: 3, Patrimony: "AC002", Type: constants.InterventionReservation, StartDate: date(2024, time.February, 1, 0, 0)},
	}

	stats := Aggregate(nil, equipment, Options{History: history})
	assert.Equal(t, 1, stats.InactiveEquipment)
	assert.Equal(t, 2, stats.ActiveEquipment)

	assert.False(t, IsActive(equipment[0], history))
	assert.True(t, IsActive(equipment[1], history))
}

func TestCurrentLocation(t *testing.T) {
	eq := sampleEquipment()[1]
	history := sampleInterventions()

	assert.Equal(t, "Sala 102", CurrentLocation(eq, history))
	assert.Equal(t, "Sala 101", CurrentLocation(sampleEquipment()[0], history))
}

func TestSnapshot_IndexRebuiltAfterDecode(t *testing.T) {
	s := &Snapshot{Equipment: sampleEquipment()}

	eq, ok := s.Index().Lookup("AC002")
	require.True(t, ok)
	assert.Equal(t, "LG", eq.Brand.String)

	_, ok = NewSnapshot(nil, nil, time.Now()).Index().Lookup("AC002")
	assert.False(t, ok)
}

package query

import (
	"sort"
	"strconv"
	"time"

	"ac-registry/internal/entities"
	"ac-registry/pkg/constants"
)

// Options controla a montagem dos buckets mensais.
type Options struct {
	// SplitYears=false soma o mesmo mês de anos diferentes no mesmo bucket.
	SplitYears bool
	// Location é o fuso usado para decidir o mês de cada data. nil = UTC.
	Location *time.Location
	// History, se informado, é usado para o status ativo/inativo no lugar da lista filtrada.
	History []entities.Intervention
}

type MonthlyBucket struct {
	Year  int     `json:"year,omitempty"`
	Month int     `json:"month"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type TypeMetric struct {
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Count       int     `json:"count"`
	Cost        float64 `json:"cost"`
	AverageCost float64 `json:"average_cost"`
}

type Stats struct {
	TotalEquipment     int             `json:"total_equipment"`
	ActiveEquipment    int             `json:"active_equipment"`
	InactiveEquipment  int             `json:"inactive_equipment"`
	TotalCost          float64         `json:"total_cost"`
	PendingMaintenance int             `json:"pending_maintenance"`
	MonthlyCosts       []MonthlyBucket `json:"monthly_costs"`
	ByType             []TypeMetric    `json:"by_type"`
	SplitYears         bool            `json:"split_years"`
}

// Aggregate calcula os indicadores do painel. Função pura.
func Aggregate(interventions []entities.Intervention, equipment []entities.Equipment, opts Options) Stats {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	stats := Stats{
		TotalEquipment: len(equipment),
		SplitYears:     opts.SplitYears,
	}

	for i := range interventions {
		iv := &interventions[i]
		stats.TotalCost += iv.Cost
		if iv.Type.IsMaintenance() && !iv.EndDate.Valid {
			stats.PendingMaintenance++
		}
	}

	if opts.SplitYears {
		stats.MonthlyCosts = monthlyByYear(interventions, loc)
	} else {
		stats.MonthlyCosts = monthlyCollapsed(interventions, loc)
	}
	stats.ByType = byType(interventions)

	history := opts.History
	if history == nil {
		history = interventions
	}
	latest := LatestByPatrimony(history)
	for i := range equipment {
		if iv, ok := latest[equipment[i].Patrimony]; ok && iv.Type == constants.InterventionUninstall {
			stats.InactiveEquipment++
		}
	}
	stats.ActiveEquipment = stats.TotalEquipment - stats.InactiveEquipment

	return stats
}

func monthlyCollapsed(interventions []entities.Intervention, loc *time.Location) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 12)
	for m := range buckets {
		buckets[m] = MonthlyBucket{Month: m + 1, Label: constants.MonthNames[m]}
	}
	for i := range interventions {
		m := interventions[i].StartDate.In(loc).Month()
		buckets[m-1].Value += interventions[i].Cost
	}
	return buckets
}

// monthlyByYear gera um bucket por (ano, mês), contínuo do primeiro ao último mês com dados.
func monthlyByYear(interventions []entities.Intervention, loc *time.Location) []MonthlyBucket {
	if len(interventions) == 0 {
		return []MonthlyBucket{}
	}

	key := func(t time.Time) int {
		t = t.In(loc)
		return t.Year()*12 + int(t.Month()) - 1
	}

	sums := make(map[int]float64)
	first, last := key(interventions[0].StartDate), key(interventions[0].StartDate)
	for i := range interventions {
		k := key(interventions[i].StartDate)
		sums[k] += interventions[i].Cost
		if k < first {
			first = k
		}
		if k > last {
			last = k
		}
	}

	buckets := make([]MonthlyBucket, 0, last-first+1)
	for k := first; k <= last; k++ {
		year, month := k/12, k%12
		buckets = append(buckets, MonthlyBucket{
			Year:  year,
			Month: month + 1,
			Label: constants.MonthNames[month] + "/" + strconv.Itoa(year),
			Value: sums[k],
		})
	}
	return buckets
}

func byType(interventions []entities.Intervention) []TypeMetric {
	metrics := make(map[string]*TypeMetric)
	for i := range interventions {
		t := string(interventions[i].Type)
		m, ok := metrics[t]
		if !ok {
			m = &TypeMetric{Type: t, Label: interventions[i].Type.Label()}
			metrics[t] = m
		}
		m.Count++
		m.Cost += interventions[i].Cost
	}

	out := make([]TypeMetric, 0, len(metrics))
	for _, m := range metrics {
		m.AverageCost = m.Cost / float64(m.Count)
		out = append(out, *m)
	}

	sort.Slice(out, func(i, j int) bool {
		oi, oj := constants.InterventionTypeOrder(out[i].Type), constants.InterventionTypeOrder(out[j].Type)
		switch {
		case oi >= 0 && oj >= 0:
			return oi < oj
		case oi >= 0:
			return true
		case oj >= 0:
			return false
		default:
			return out[i].Type < out[j].Type
		}
	})
	return out
}

// LatestByPatrimony devolve a intervenção mais recente (por data de início) de cada equipamento.
func LatestByPatrimony(interventions []entities.Intervention) map[string]entities.Intervention {
	latest := make(map[string]entities.Intervention)
	for _, iv := range interventions {
		cur, ok := latest[iv.Patrimony]
		if !ok || iv.StartDate.After(cur.StartDate) || (iv.StartDate.Equal(cur.StartDate) && iv.ID > cur.ID) {
			latest[iv.Patrimony] = iv
		}
	}
	return latest
}

// CurrentLocation: destino da movimentação mais recente, senão o local inicial.
func CurrentLocation(eq entities.Equipment, history []entities.Intervention) string {
	var (
		found bool
		best  entities.Intervention
	)
	for _, iv := range history {
		if iv.Patrimony != eq.Patrimony || iv.Type != constants.InterventionRelocation || !iv.Destination.Valid {
			continue
		}
		if !found || iv.StartDate.After(best.StartDate) || (iv.StartDate.Equal(best.StartDate) && iv.ID > best.ID) {
			best, found = iv, true
		}
	}
	if found {
		return best.Destination.String
	}
	return eq.InitialPlace
}

// IsActive: falso quando a última intervenção é uma desinstalação.
func IsActive(eq entities.Equipment, history []entities.Intervention) bool {
	latest := LatestByPatrimony(filterByPatrimony(history, eq.Patrimony))
	iv, ok := latest[eq.Patrimony]
	return !ok || iv.Type != constants.InterventionUninstall
}

func filterByPatrimony(list []entities.Intervention, patrimony string) []entities.Intervention {
	out := make([]entities.Intervention, 0)
	for _, iv := range list {
		if iv.Patrimony == patrimony {
			out = append(out, iv)
		}
	}
	return out
}

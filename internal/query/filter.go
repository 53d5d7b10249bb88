package query

import (
	"strconv"
	"strings"
	"time"

	"ac-registry/internal/entities"
	"ac-registry/pkg/utils"
)

// Criteria - filtros do painel de consultas. Campo vazio = filtro inativo.
type Criteria struct {
	Patrimony string     `json:"patrimony,omitempty"`
	Types     []string   `json:"types,omitempty"`
	Locations []string   `json:"locations,omitempty"`
	Brand     string     `json:"brand,omitempty"`
	Power     string     `json:"power,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
}

func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Patrimony) == "" &&
		len(c.Types) == 0 &&
		len(c.Locations) == 0 &&
		strings.TrimSpace(c.Brand) == "" &&
		strings.TrimSpace(c.Power) == "" &&
		c.From == nil && c.To == nil
}

type predicate func(iv *entities.Intervention) bool

// FilterInterventions devolve, na ordem original, as intervenções que satisfazem
// todos os critérios ativos.
func FilterInterventions(list []entities.Intervention, idx EquipmentIndex, c Criteria) []entities.Intervention {
	preds := c.interventionPredicates(idx)
	if len(preds) == 0 {
		return list
	}

	out := make([]entities.Intervention, 0, len(list))
	for i := range list {
		if matchAll(&list[i], preds) {
			out = append(out, list[i])
		}
	}
	return out
}

func matchAll(iv *entities.Intervention, preds []predicate) bool {
	for _, p := range preds {
		if !p(iv) {
			return false
		}
	}
	return true
}

func (c Criteria) interventionPredicates(idx EquipmentIndex) []predicate {
	var preds []predicate

	if needle := strings.ToLower(strings.TrimSpace(c.Patrimony)); needle != "" {
		preds = append(preds, func(iv *entities.Intervention) bool {
			return strings.Contains(strings.ToLower(iv.Patrimony), needle)
		})
	}

	if len(c.Types) > 0 {
		types := toSet(c.Types)
		preds = append(preds, func(iv *entities.Intervention) bool {
			_, ok := types[string(iv.Type)]
			return ok
		})
	}

	if len(c.Locations) > 0 {
		locations := toSet(c.Locations)
		preds = append(preds, func(iv *entities.Intervention) bool {
			return inSet(locations, iv.Origin.String, iv.Origin.Valid) ||
				inSet(locations, iv.Destination.String, iv.Destination.Valid)
		})
	}

	if brand := strings.TrimSpace(c.Brand); brand != "" {
		preds = append(preds, func(iv *entities.Intervention) bool {
			eq, ok := idx.Lookup(iv.Patrimony)
			return ok && brandMatches(eq, brand)
		})
	}

	if power := strings.TrimSpace(c.Power); power != "" {
		preds = append(preds, func(iv *entities.Intervention) bool {
			eq, ok := idx.Lookup(iv.Patrimony)
			return ok && powerMatches(eq, power)
		})
	}

	if c.From != nil {
		from := utils.StartOfDay(*c.From)
		preds = append(preds, func(iv *entities.Intervention) bool {
			return !iv.StartDate.Before(from)
		})
	}

	if c.To != nil {
		to := utils.EndOfDay(*c.To)
		preds = append(preds, func(iv *entities.Intervention) bool {
			return !iv.StartDate.After(to)
		})
	}

	return preds
}

// FilterEquipment aplica ao cadastro os critérios que fazem sentido para equipamento:
// patrimônio, marca, potência e local (contra o local inicial).
func FilterEquipment(list []entities.Equipment, c Criteria) []entities.Equipment {
	needle := strings.ToLower(strings.TrimSpace(c.Patrimony))
	brand := strings.TrimSpace(c.Brand)
	power := strings.TrimSpace(c.Power)
	locations := toSet(c.Locations)

	if needle == "" && brand == "" && power == "" && len(locations) == 0 {
		return list
	}

	out := make([]entities.Equipment, 0, len(list))
	for i := range list {
		eq := &list[i]
		if needle != "" && !strings.Contains(strings.ToLower(eq.Patrimony), needle) {
			continue
		}
		if brand != "" && !brandMatches(eq, brand) {
			continue
		}
		if power != "" && !powerMatches(eq, power) {
			continue
		}
		if len(locations) > 0 {
			if _, ok := locations[eq.InitialPlace]; !ok {
				continue
			}
		}
		out = append(out, *eq)
	}
	return out
}

func brandMatches(eq *entities.Equipment, brand string) bool {
	return eq.Brand.Valid && strings.Contains(strings.ToLower(eq.Brand.String), strings.ToLower(brand))
}

// powerMatches compara contra a forma decimal canônica (1500, 12.5).
func powerMatches(eq *entities.Equipment, power string) bool {
	if !eq.Power.Valid {
		return false
	}
	return strings.Contains(strconv.FormatFloat(eq.Power.Float64, 'f', -1, 64), power)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func inSet(set map[string]struct{}, value string, valid bool) bool {
	if !valid {
		return false
	}
	_, ok := set[value]
	return ok
}

package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDecimal aceita qualquer número finito que a planilha ou o formulário enviem
// ("12", "9.5", ".5", "1e3"). NaN e infinito são rejeitados.
func ParseDecimal(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("número inválido: %q", value)
	}
	return f, nil
}

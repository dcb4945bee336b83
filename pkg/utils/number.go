package utils

import (
	"math"
	"strconv"
)

// FormatNumber devolve a menor representação decimal que preserva o valor
// (120.50 -> "120.5", 1200 -> "1200").
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	if f == 0 {
		return "0"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

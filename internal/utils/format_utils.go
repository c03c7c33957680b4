package utils

import (
	"math"
	"strconv"
)

// FormatAmount renders an asset amount in its shortest exact decimal form,
// without exponent and without a trailing ".0":
//
//	5.2    -> "5.2"
//	1000.0 -> "1000"
//	0.0001 -> "0.0001"
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

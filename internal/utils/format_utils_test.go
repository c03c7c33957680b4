package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		5.2:     "5.2",
		1000.0:  "1000",
		150.5:   "150.5",
		0:       "0",
		0.0001:  "0.0001",
		-3.25:   "-3.25",
		1e21:    "1000000000000000000000",
		75.3:    "75.3",
		2000.00: "2000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(in), "amount %v", in)
	}

	assert.Equal(t, "NaN", FormatAmount(math.NaN()))
	assert.Equal(t, "inf", FormatAmount(math.Inf(1)))
	assert.Equal(t, "-inf", FormatAmount(math.Inf(-1)))
}

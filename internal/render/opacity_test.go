package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOpacity_TwoDigitRule(t *testing.T) {
	tests := []struct {
		centi int
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"}, // below 10 keeps its leading zero
		{7, "0.07"},
		{10, "0.10"},
		{30, "0.30"},
		{39, "0.39"},
		{89, "0.89"},
		{99, "0.99"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOpacity(tt.centi))
		})
	}
}

func TestFormatOpacity_PanicsOutsideRange(t *testing.T) {
	assert.Panics(t, func() { FormatOpacity(-1) })
	assert.Panics(t, func() { FormatOpacity(100) })
}

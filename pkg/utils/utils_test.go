package utils

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "arredonda para cima", in: 1.336, want: 1.34},
		{name: "arredonda para baixo", in: 2.331, want: 2.33},
		{name: "negativo", in: -1.006, want: -1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundWithTwoDecimalPlace(tt.in), 1e-9)
		})
	}

	assert.True(t, math.IsInf(RoundWithTwoDecimalPlace(math.Inf(1)), 1))
}

func TestGenerateRunID(t *testing.T) {
	first, err := GenerateRunID()
	require.NoError(t, err)
	second, err := GenerateRunID()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{12}$`), first)
	assert.NotEqual(t, first, second)
}

func TestPrettyJSON(t *testing.T) {
	out, err := PrettyJSON(map[string]int{"score": 82})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"score\": 82\n}", out)

	_, err = PrettyJSON(make(chan int))
	assert.Error(t, err)
}

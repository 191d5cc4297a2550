package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholds_UnderspendFloor(t *testing.T) {
	thresholds := DefaultThresholds()

	assert.Equal(t, 70.0, thresholds.UnderspendFloor(7))
	assert.Equal(t, 30.0, thresholds.UnderspendFloor(3))
	assert.Equal(t, 70.0, thresholds.UnderspendFloor(0), "sem dias usa a janela configurada")

	thresholds.AnalysisDays = 0
	assert.Equal(t, 10.0, thresholds.UnderspendFloor(0))
}

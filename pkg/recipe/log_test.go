package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/gravity"
	"github.com/arthur-debert/wort/pkg/recipe"
)

func TestMeasurement_Corrected(t *testing.T) {
	hot := 100.0
	tests := []struct {
		name string
		m    recipe.Measurement
		want float64
	}{
		{"direct", recipe.Measurement{Gravity: 1.012}, 1.012},
		{"hydrometer at calibration", recipe.Measurement{Instrument: recipe.Hydrometer, Gravity: 1.050}, 1.050},
		{"hydrometer hot sample", recipe.Measurement{Instrument: recipe.Hydrometer, Gravity: 1.050, Temp: &hot},
			1.050 * (1.00130346 - 1.34722124e-4*100 + 2.04052596e-6*100*100 - 2.32820948e-9*100*100*100)},
		{"refractometer", recipe.Measurement{Instrument: recipe.Refractometer, Gravity: 1.030},
			gravity.RefractometerCorrect(1.050, 1.030)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.m.Corrected(1.050)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestMeasurement_Derived(t *testing.T) {
	m := recipe.Measurement{Gravity: 1.010}

	att, err := m.ApparentAttenuation(1.050)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, att, 1e-9)

	abv, err := m.ABV(1.050)
	require.NoError(t, err)
	assert.InDelta(t, 5.2356796, abv, 1e-6)
}

func TestMeasurement_OutOfRangeTemperature(t *testing.T) {
	boiling := 250.0
	m := recipe.Measurement{Instrument: recipe.Hydrometer, Gravity: 1.050, Temp: &boiling}

	_, err := m.ABV(1.060)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

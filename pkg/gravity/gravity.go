// Package gravity converts between extract scales and derives alcohol and
// nutrition figures from a pair of gravities.
//
// Unless noted, formulas follow Hall, "Brew by the Numbers", Zymurgy,
// Summer 1995. Calorie figures are per 12 oz serving.
package gravity

import (
	"github.com/arthur-debert/wort/pkg/errors"
)

// Hydrometer correction is fitted for this range, °F.
const (
	MinHydrometerTemp = 32.0
	MaxHydrometerTemp = 212.0
)

// SGToPlato converts specific gravity to degrees Plato. Valid from 1.000
// to 1.144 (0 to 33 °P).
func SGToPlato(sg float64) float64 {
	return -668.962 + 1262.45*sg - 776.43*sg*sg + 182.94*sg*sg*sg
}

// PlatoToSG converts degrees Plato to specific gravity.
func PlatoToSG(plato float64) float64 {
	return (((4.3074e-8*plato)+1.3488e-5)*plato+0.0038661)*plato + 1.00001
}

// SGToBrix converts specific gravity to degrees Brix (Brewer's Friend
// polynomial).
func SGToBrix(sg float64) float64 {
	return ((182.461*sg-775.6821)*sg+1262.7794)*sg - 669.5622
}

// HydrometerCorrect adjusts a 60/60 °F hydrometer reading taken at tempF.
func HydrometerCorrect(sg, tempF float64) (float64, error) {
	if tempF < MinHydrometerTemp || tempF > MaxHydrometerTemp {
		return 0, errors.Newf(errors.ErrInvalidInput,
			"hydrometer correction is valid from %g to %g °F, got %g", MinHydrometerTemp, MaxHydrometerTemp, tempF).
			WithDetail("temperature", tempF)
	}
	t := tempF
	return sg * (1.00130346 -
		1.34722124e-4*t +
		2.04052596e-6*t*t -
		2.32820948e-9*t*t*t), nil
}

// RefractometerCorrect estimates the true gravity of a fermenting sample
// from the original gravity and the raw refractometer reading as SG.
func RefractometerCorrect(og, raw float64) float64 {
	return 1 - 0.002349*SGToBrix(og) + 0.006276*SGToBrix(raw)
}

// FToC converts Fahrenheit to Celsius
func FToC(f float64) float64 { return (f - 32) * 5 / 9 }

// CToF converts Celsius to Fahrenheit
func CToF(c float64) float64 { return c*9/5 + 32 }

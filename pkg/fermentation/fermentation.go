// Package fermentation estimates how far a culture takes a wort and what
// the resulting beer looks like.
package fermentation

import (
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/logging"
)

// ReferenceSaccTemp is the saccharification temperature, °F, at which
// culture attenuation figures apply unchanged.
const ReferenceSaccTemp = 152.0

// AdjustedAttenuation lowers attenuation one point per °F the mash ran
// above the reference temperature, and raises it for cooler mashes.
func AdjustedAttenuation(attenuation, saccTemp float64) float64 {
	return attenuation - (saccTemp - ReferenceSaccTemp)
}

// FinalGravity of a wort at sg fermented with the given apparent
// attenuation percent, after a mash at saccTemp.
func FinalGravity(sg, saccTemp, attenuation float64) float64 {
	a := AdjustedAttenuation(attenuation, saccTemp)
	return sg - (sg-1)*a/100
}

// MeanTemp averages the saccharification steps. An empty list gives the
// reference temperature.
func MeanTemp(temps []float64) float64 {
	if len(temps) == 0 {
		return ReferenceSaccTemp
	}
	var sum float64
	for _, t := range temps {
		sum += t
	}
	return sum / float64(len(temps))
}

// Estimate is the outcome of attenuating a wort.
type Estimate struct {
	// Culture is the organism that finished the beer; nil when an
	// attenuation override was used.
	Culture *ingredients.Culture
	// Attenuation is the temperature-adjusted apparent attenuation, percent.
	Attenuation  float64
	FinalGravity float64
}

// Attenuate picks the culture reaching the lowest final gravity from sg.
// A non-nil override replaces culture data and skips the temperature
// correction.
func Attenuate(sg, saccTemp float64, cultures []*ingredients.Culture, override *float64) (Estimate, error) {
	logger := logging.GetLogger("fermentation")

	if override != nil {
		return Estimate{
			Attenuation:  *override,
			FinalGravity: FinalGravity(sg, ReferenceSaccTemp, *override),
		}, nil
	}

	if len(cultures) == 0 {
		return Estimate{}, errors.New(errors.ErrNoCulture,
			"nothing to ferment with: add a culture or set an attenuation")
	}

	var best Estimate
	for i, c := range cultures {
		e := Estimate{
			Culture:      c,
			Attenuation:  AdjustedAttenuation(c.Attenuation(), saccTemp),
			FinalGravity: FinalGravity(sg, saccTemp, c.Attenuation()),
		}
		logger.Trace().
			Str("culture", c.Name).
			Float64("fg", e.FinalGravity).
			Msg("Culture candidate")
		if i == 0 || e.FinalGravity < best.FinalGravity {
			best = e
		}
	}

	logger.Debug().
		Str("culture", best.Culture.Name).
		Float64("attenuation", best.Attenuation).
		Msg("Selected culture")
	return best, nil
}

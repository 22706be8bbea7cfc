package brew

import (
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/logging"
	"github.com/arthur-debert/wort/pkg/timing"
	"github.com/arthur-debert/wort/pkg/wort"
)

// StrikeWaterTemp is the water temperature that brings grain at tGrain to
// tTarget with a water to grain ratio r, qt/lb.
func StrikeWaterTemp(r, tGrain, tTarget float64) float64 {
	return 0.2/r*(tTarget-tGrain) + tTarget
}

// InfusionVolume is the quarts of water at tWater needed to raise a mash
// of weight lb and volume qt from t to tTarget.
func InfusionVolume(volume, weight, t, tTarget, tWater float64) float64 {
	return (tTarget - t) * (0.2*weight + volume) / (tWater - t)
}

// InfusionStep is one water addition of the mash schedule.
type InfusionStep struct {
	MashTemp  float64
	WaterTemp float64
	// Volume in gallons
	Volume float64
}

// Infusion is the mash water schedule.
type Infusion struct {
	Steps       []InfusionStep
	GrainWeight float64
	// MashWater is the sum of step volumes, gal.
	MashWater float64
	// Sparge is the remaining water to collect the kettle volume, gal.
	Sparge float64
	// Collected is the wort volume run off into the kettle, gal.
	Collected float64
}

// Ratio is the final water to grain ratio of the mash, qt/lb.
func (in Infusion) Ratio() float64 {
	if in.GrainWeight == 0 {
		return 0
	}
	return in.MashWater * 4 / in.GrainWeight
}

// Infusion computes the strike and step infusions. It fails with
// NEGATIVE_SPARGE when the mash water alone exceeds what the kettle needs.
func (b *Brew) Infusion() (Infusion, error) {
	p := b.Params
	temps := p.MashTemps()
	if len(temps) == 0 {
		return Infusion{}, invalid("t_sacc", "the mash needs at least one temperature step")
	}

	weight := b.Ingredients.AtOrBefore(timing.Sparge()).Grains().Weight()
	in := Infusion{GrainWeight: weight}

	for i, target := range temps {
		step := InfusionStep{MashTemp: target}
		if i == 0 {
			step.Volume = p.RMash * weight / 4
			step.WaterTemp = StrikeWaterTemp(p.RMash, p.TGrain, target)
		} else {
			prev := temps[i-1]
			if p.TWater <= prev {
				return Infusion{}, invalid("t_water", "infusion water at %g °F cannot raise a mash at %g °F", p.TWater, prev)
			}
			qt := InfusionVolume(in.MashWater*4, weight, prev, target, p.TWater)
			if qt < 0 {
				return Infusion{}, invalid("t_sacc", "mash step from %g to %g °F would need to cool the mash", prev, target)
			}
			step.Volume = qt / 4
			step.WaterTemp = p.TWater
		}
		in.Steps = append(in.Steps, step)
		in.MashWater += step.Volume
	}

	in.Collected = b.Volume(timing.Lauter(), false)
	in.Sparge = b.Volume(timing.Sparge(), false) - in.MashWater
	if in.Sparge < 0 {
		return Infusion{}, errors.Newf(errors.ErrNegativeSparge,
			"mash water (%.2f gal) exceeds the lauter volume by %.2f gal: lower r_mash or change the temperature steps",
			in.MashWater, -in.Sparge).
			WithDetail("mash_water", in.MashWater).
			WithDetail("sparge", in.Sparge).
			WithDetail("r_mash", p.RMash)
	}
	return in, nil
}

// ExtractRow is one gravity contributor's share of the recipe.
type ExtractRow struct {
	Ingredient      ingredients.ExtractSource
	Weight          float64
	WeightFraction  float64
	PPG             int
	Extract         float64
	ExtractFraction float64
}

// MashResult is the pre-boil wort and how it was made.
type MashResult struct {
	// Wort is the pre-boil wort in the kettle.
	Wort       wort.Wort
	Efficiency float64
	Rows       []ExtractRow
	Infusion   Infusion
}

// Mash mashes and lauters the grain. Only mash, vorlauf, sparge and lauter
// additions count towards the pre-boil gravity; the rows cover every
// gravity contributor of the recipe.
func (b *Brew) Mash() (MashResult, error) {
	logger := logging.GetLogger("brew.mash")

	infusion, err := b.Infusion()
	if err != nil {
		return MashResult{}, err
	}

	kettle := b.Volume(timing.Lauter(), false)
	preboil := wort.Wort{
		Gravity: b.calculator().Gravity(timing.Lauter(), wort.WithVolume(kettle)),
		Volume:  kettle,
	}

	res := MashResult{
		Wort:       preboil,
		Efficiency: b.Params.Efficiency,
		Infusion:   infusion,
		Rows:       b.extractRows(),
	}

	logger.Debug().
		Float64("volume", kettle).
		Float64("gravity", preboil.Gravity).
		Float64("sparge", infusion.Sparge).
		Msg("Mash complete")
	return res, nil
}

func (b *Brew) extractRows() []ExtractRow {
	eff := b.Params.Efficiency
	sources := b.Ingredients.Extractables().ExtractSources()

	var totalWeight, totalExtract float64
	for _, s := range sources {
		totalWeight += s.Pounds()
		totalExtract += s.Extract(eff)
	}

	rows := make([]ExtractRow, 0, len(sources))
	for _, s := range sources {
		row := ExtractRow{
			Ingredient: s,
			Weight:     s.Pounds(),
			PPG:        s.Potential(),
			Extract:    s.Extract(eff),
		}
		if totalWeight > 0 {
			row.WeightFraction = row.Weight / totalWeight
		}
		if totalExtract > 0 {
			row.ExtractFraction = row.Extract / totalExtract
		}
		rows = append(rows, row)
	}
	return rows
}

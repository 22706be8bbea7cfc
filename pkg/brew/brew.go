// Package brew evaluates a recipe end to end: mash and lauter, boil,
// fermentation and the finished beer.
//
// A Brew is a pure function of its ingredients, target volume and
// parameters. Every method recomputes from those inputs, so evaluating
// twice on an unchanged collection gives identical results.
package brew

import (
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/timing"
	"github.com/arthur-debert/wort/pkg/wort"
)

// Brew ties a recipe to the equipment it is brewed on.
type Brew struct {
	Ingredients *ingredients.Ingredients
	// TargetVolume is the wort volume delivered to the primary, before
	// any primary additions, gal.
	TargetVolume float64
	Params       Params
}

// New validates the inputs and returns a Brew.
func New(ing *ingredients.Ingredients, targetVolume float64, params Params) (*Brew, error) {
	if ing == nil {
		return nil, errors.New(errors.ErrInvalidInput, "a brew needs an ingredient list")
	}
	if targetVolume <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "target volume must be positive, got %g", targetVolume).
			WithDetail("target_volume", targetVolume)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Brew{Ingredients: ing, TargetVolume: targetVolume, Params: params}, nil
}

// FromValues decodes a resolved parameter mapping and builds a Brew.
func FromValues(ing *ingredients.Ingredients, targetVolume float64, values map[string]any) (*Brew, error) {
	p, err := DecodeParams(values)
	if err != nil {
		return nil, err
	}
	return New(ing, targetVolume, p)
}

func (b *Brew) calculator() wort.Calculator {
	return wort.Calculator{
		Ingredients:  b.Ingredients,
		TargetVolume: b.TargetVolume,
		Efficiency:   b.Params.Efficiency,
	}
}

// HopStand reports whether a hop stand follows the boil, either by
// parameter or because some addition is timed in one.
func (b *Brew) HopStand() bool {
	return b.Params.HopStand || b.Ingredients.AtStage(timing.StageHopStand).Len() > 0
}

func (b *Brew) additions(t timing.Timing, upto bool) *ingredients.Ingredients {
	if upto {
		return b.Ingredients.Before(t)
	}
	return b.Ingredients.AtOrBefore(t)
}

// Volume is the liquid volume at t in gallons, counting additions at t
// unless upto is set. Going back in time it adds the kettle gap before
// the primary, remaining boil-off during and before the boil, and mash
// tun losses before the lauter.
func (b *Brew) Volume(t timing.Timing, upto bool) float64 {
	p := b.Params
	sel := b.additions(t, upto)

	v := b.TargetVolume + sel.Volume()

	if t.Before(timing.Primary()) || (upto && t.Equal(timing.Primary())) {
		v += p.KettleGap
	}

	if t.Is(timing.StageBoil) {
		v += min(p.BoilTime, t.Minutes()) / 60 * p.RBoil
	} else if t.Before(timing.Boil(p.BoilTime)) {
		v += p.BoilTime / 60 * p.RBoil
	}

	if t.Before(timing.Lauter()) {
		v += p.MLTGap + sel.Grains().Weight()*p.Absorption/4
	}
	return v
}

// Extract is the gravity points per gallon from additions at or before t,
// or strictly before t when upto is set.
func (b *Brew) Extract(t timing.Timing, upto bool) float64 {
	if upto {
		return b.Ingredients.Extractables().Before(t).Extract(b.Params.Efficiency)
	}
	return b.calculator().Extract(t)
}

// Wort is the snapshot at t: gravity of everything added so far in the
// volume present at t.
func (b *Brew) Wort(t timing.Timing) wort.Wort {
	v := b.Volume(t, false)
	return wort.Wort{
		Gravity: b.calculator().Gravity(t, wort.WithVolume(v)),
		Volume:  v,
	}
}

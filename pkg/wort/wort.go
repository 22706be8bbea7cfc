// Package wort derives volume, gravity and bitterness from a collection of
// timed ingredients.
package wort

import (
	"github.com/arthur-debert/wort/pkg/gravity"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/timing"
)

// Wort is a snapshot of the liquid at some point in the process. It is
// computed on demand and never cached.
type Wort struct {
	// Gravity is the specific gravity
	Gravity float64
	// Volume in gallons
	Volume float64
	// Bitterness in IBU, zero before the boil
	Bitterness float64
}

// Brix returns the gravity in degrees Brix
func (w Wort) Brix() float64 { return gravity.SGToBrix(w.Gravity) }

// Plato returns the gravity in degrees Plato
func (w Wort) Plato() float64 { return gravity.SGToPlato(w.Gravity) }

// Calculator aggregates a recipe's ingredients. It holds no state beyond
// its inputs; every method recomputes from the collection.
type Calculator struct {
	Ingredients *ingredients.Ingredients
	// TargetVolume is the base wort volume in gallons.
	TargetVolume float64
	// Efficiency is the mash and lauter efficiency, in (0, 1].
	Efficiency float64
}

// Volume is the target volume plus the physical volume of every fruit and
// water addition made at or before t.
func (c Calculator) Volume(t timing.Timing) float64 {
	return c.TargetVolume + c.Ingredients.AtOrBefore(t).Volume()
}

type gravityOptions struct {
	volume       float64
	excludeFully bool
}

// GravityOption tunes Gravity.
type GravityOption func(*gravityOptions)

// WithVolume divides the extract by volume instead of Volume(t).
func WithVolume(gal float64) GravityOption {
	return func(o *gravityOptions) { o.volume = gal }
}

// ExcludeFullyFermentable leaves out sugars that ferment out completely,
// giving the gravity a culture actually attenuates.
func ExcludeFullyFermentable() GravityOption {
	return func(o *gravityOptions) { o.excludeFully = true }
}

// Extract sums the gravity points per gallon of the fermentables, fruit
// and unfermentables added at or before t.
func (c Calculator) Extract(t timing.Timing, opts ...GravityOption) float64 {
	o := resolve(opts)
	sources := c.Ingredients.Extractables().AtOrBefore(t)
	if o.excludeFully {
		sources = sources.Filter(ingredients.Not(ingredients.FullyFermentable()))
	}
	return sources.Extract(c.Efficiency)
}

// Gravity is the specific gravity at t: 1 + extract / volume / 1000.
func (c Calculator) Gravity(t timing.Timing, opts ...GravityOption) float64 {
	o := resolve(opts)
	vol := o.volume
	if vol == 0 {
		vol = c.Volume(t)
	}
	if vol <= 0 {
		return 1
	}
	return 1 + c.Extract(t, opts...)/vol/1000
}

func resolve(opts []GravityOption) gravityOptions {
	var o gravityOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

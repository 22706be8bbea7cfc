// Package ingredients defines the closed set of recipe ingredients and the
// ordered collection every calculation queries.
package ingredients

import (
	"fmt"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
)

// Kind discriminates the ingredient variants
type Kind int

const (
	KindFermentable Kind = iota + 1
	KindUnfermentable
	KindHop
	KindSpice
	KindFruit
	KindOther
	KindPriming
	KindWater
	KindCulture
)

var kindNames = map[Kind]string{
	KindFermentable:   "Fermentable",
	KindUnfermentable: "Unfermentable",
	KindHop:           "Hop",
	KindSpice:         "Spice",
	KindFruit:         "Fruit",
	KindOther:         "Other",
	KindPriming:       "Priming",
	KindWater:         "Water",
	KindCulture:       "Culture",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Ingredient is implemented only by the variants in this package.
type Ingredient interface {
	Kind() Kind
	// Info returns the fields every variant shares.
	Info() Base
	// Quantity is the amount formatted for display.
	Quantity() string
	Validate() error
	fmt.Stringer

	ingredient()
}

// ExtractSource is an ingredient that contributes gravity points.
type ExtractSource interface {
	Ingredient
	Pounds() float64
	Potential() int
	// Extract is gravity points per gallon: weight × PPG, scaled by the
	// mash efficiency when the addition is mashed.
	Extract(efficiency float64) float64
}

// VolumeSource is an ingredient that adds physical volume to the wort.
type VolumeSource interface {
	Ingredient
	AddedVolume() float64
}

// Base holds the fields shared by all variants.
type Base struct {
	Name   string
	Timing timing.Timing
	Desc   string
}

func (b Base) Info() Base { return b }

func (Base) ingredient() {}

// Description falls back to the name when no description was given.
func (b Base) Description() string {
	if b.Desc == "" {
		return b.Name
	}
	return b.Desc
}

func (b Base) validate(kind Kind) error {
	if b.Name == "" {
		return errors.Newf(errors.ErrInvalidIngredient, "%s requires a name", kind)
	}
	if err := b.Timing.Validate(); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidIngredient, "%s %q has an invalid timing", kind, b.Name)
	}
	return nil
}

// Option adjusts the shared fields of a new ingredient.
type Option func(*Base)

// At sets the timing of the addition.
func At(t timing.Timing) Option {
	return func(b *Base) { b.Timing = t }
}

// Named overrides the display name.
func Named(name string) Option {
	return func(b *Base) {
		if name != "" {
			b.Name = name
		}
	}
}

// Described sets a long-form description.
func Described(desc string) Option {
	return func(b *Base) { b.Desc = desc }
}

func newBase(name string, t timing.Timing, opts []Option) Base {
	b := Base{Name: name, Timing: t}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func negative(kind Kind, name, field string, v float64) error {
	return errors.Newf(errors.ErrInvalidIngredient, "%s %q: %s must not be negative, got %g", kind, name, field, v).
		WithDetail("field", field)
}

// pounds formats a weight the way recipe sheets print it.
func pounds(w float64) string {
	s := fmt.Sprintf("%.2f", w)
	if s == "1.00" {
		return "1.00 lb"
	}
	return s + " lbs"
}

func describe(name, quantity string, t timing.Timing) string {
	return fmt.Sprintf("%s, %s at %s", name, quantity, t)
}

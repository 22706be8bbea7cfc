package ingredients

import (
	"fmt"
	"math"

	"github.com/arthur-debert/wort/pkg/catalog"
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
)

// Fermentable is a grain, adjunct or sugar.
type Fermentable struct {
	Base
	// Weight in pounds
	Weight float64
	PPG    int
	// Grain additions are mashed and absorb water.
	Grain bool
	// FullyFermentable additions ferment out completely.
	FullyFermentable bool
}

// NewFermentable resolves key in the catalog. The addition defaults to
// the mash.
func NewFermentable(key string, weight float64, opts ...Option) (*Fermentable, error) {
	entry, err := catalog.Fermentable(key)
	if err != nil {
		return nil, err
	}
	f := &Fermentable{
		Base:             newBase(entry.Name, timing.Mash(), opts),
		Weight:           weight,
		PPG:              entry.PPG,
		Grain:            entry.Grain,
		FullyFermentable: entry.FullyFermentable,
	}
	return f, f.Validate()
}

// CustomFermentable bypasses the catalog. The name is required.
func CustomFermentable(name string, ppg int, weight float64, opts ...Option) (*Fermentable, error) {
	if name == "" {
		return nil, errors.New(errors.ErrInvalidIngredient, "a name is required when PPG is given directly").
			WithDetail("ppg", ppg)
	}
	f := &Fermentable{
		Base:   newBase(name, timing.Mash(), opts),
		Weight: weight,
		PPG:    ppg,
	}
	return f, f.Validate()
}

// NewGrain is a catalog fermentable added to the mash and counted as grain.
func NewGrain(key string, weight float64, opts ...Option) (*Fermentable, error) {
	f, err := NewFermentable(key, weight, opts...)
	if err != nil {
		return nil, err
	}
	f.Grain = true
	return f, nil
}

// NewSugar is a fully fermentable catalog addition, at the end of the boil
// unless told otherwise.
func NewSugar(key string, weight float64, opts ...Option) (*Fermentable, error) {
	f, err := NewFermentable(key, weight, append([]Option{At(timing.Boil(0))}, opts...)...)
	if err != nil {
		return nil, err
	}
	f.Grain = false
	f.FullyFermentable = true
	return f, nil
}

func (f *Fermentable) Kind() Kind       { return KindFermentable }
func (f *Fermentable) Quantity() string { return pounds(f.Weight) }
func (f *Fermentable) Pounds() float64  { return f.Weight }
func (f *Fermentable) Potential() int   { return f.PPG }
func (f *Fermentable) Extract(eff float64) float64 {
	return extract(f.Weight, f.PPG, f.Timing, eff)
}

func (f *Fermentable) Validate() error {
	if err := f.Base.validate(KindFermentable); err != nil {
		return err
	}
	return checkExtract(KindFermentable, f.Name, f.Weight, f.PPG)
}

func (f *Fermentable) String() string {
	return fmt.Sprintf("%s (%d PPG), %s at %s", f.Name, f.PPG, f.Quantity(), f.Timing)
}

// Unfermentable raises gravity but survives fermentation, e.g. lactose.
type Unfermentable struct {
	Base
	Weight float64
	PPG    int
}

// NewUnfermentable resolves key in the catalog. The addition defaults to
// the mash.
func NewUnfermentable(key string, weight float64, opts ...Option) (*Unfermentable, error) {
	entry, err := catalog.Fermentable(key)
	if err != nil {
		return nil, err
	}
	u := &Unfermentable{
		Base:   newBase(entry.Name, timing.Mash(), opts),
		Weight: weight,
		PPG:    entry.PPG,
	}
	return u, u.Validate()
}

// CustomUnfermentable bypasses the catalog. The name is required.
func CustomUnfermentable(name string, ppg int, weight float64, opts ...Option) (*Unfermentable, error) {
	if name == "" {
		return nil, errors.New(errors.ErrInvalidIngredient, "a name is required when PPG is given directly").
			WithDetail("ppg", ppg)
	}
	u := &Unfermentable{
		Base:   newBase(name, timing.Mash(), opts),
		Weight: weight,
		PPG:    ppg,
	}
	return u, u.Validate()
}

func (u *Unfermentable) Kind() Kind       { return KindUnfermentable }
func (u *Unfermentable) Quantity() string { return pounds(u.Weight) }
func (u *Unfermentable) Pounds() float64  { return u.Weight }
func (u *Unfermentable) Potential() int   { return u.PPG }
func (u *Unfermentable) Extract(eff float64) float64 {
	return extract(u.Weight, u.PPG, u.Timing, eff)
}

func (u *Unfermentable) Validate() error {
	if err := u.Base.validate(KindUnfermentable); err != nil {
		return err
	}
	return checkExtract(KindUnfermentable, u.Name, u.Weight, u.PPG)
}

func (u *Unfermentable) String() string {
	return fmt.Sprintf("%s (%d PPG), %s at %s", u.Name, u.PPG, u.Quantity(), u.Timing)
}

// Fruit is a fermentable whose PPG follows from its own gravity and
// density. It adds volume to the wort.
type Fruit struct {
	Base
	// SG of the fruit itself
	SG     float64
	Weight float64
	// Density in pounds per pint; zero means the fruit adds no volume.
	Density float64
}

// NewFruit adds fruit to the secondary by default, at 1 lb/pint.
func NewFruit(name string, sg, weight float64, opts ...Option) (*Fruit, error) {
	fr := &Fruit{
		Base:    newBase(name, timing.Secondary(), opts),
		SG:      sg,
		Weight:  weight,
		Density: 1.0,
	}
	return fr, fr.Validate()
}

func (fr *Fruit) Kind() Kind       { return KindFruit }
func (fr *Fruit) Quantity() string { return pounds(fr.Weight) }
func (fr *Fruit) Pounds() float64  { return fr.Weight }

// Potential is the PPG of one pound of fruit diluted in one gallon of
// water, rounded half up.
func (fr *Fruit) Potential() int {
	if fr.Density <= 0 {
		return int(math.Floor((fr.SG-1)*1000 + 0.5))
	}
	fruitVol := 1 / fr.Density / 8
	ex := (fr.SG - 1) * 1000 * fruitVol
	return int(math.Floor(ex/(fruitVol+1) + 0.5))
}

func (fr *Fruit) Extract(eff float64) float64 {
	return extract(fr.Weight, fr.Potential(), fr.Timing, eff)
}

// AddedVolume is the fruit volume in gallons.
func (fr *Fruit) AddedVolume() float64 {
	if fr.Density <= 0 {
		return 0
	}
	return fr.Weight / fr.Density / 8
}

func (fr *Fruit) Validate() error {
	if err := fr.Base.validate(KindFruit); err != nil {
		return err
	}
	switch {
	case fr.Weight < 0:
		return negative(KindFruit, fr.Name, "weight", fr.Weight)
	case fr.Density < 0:
		return negative(KindFruit, fr.Name, "density", fr.Density)
	case fr.SG < 1:
		return errors.Newf(errors.ErrInvalidIngredient, "fruit %q: specific gravity must be at least 1.000, got %.3f", fr.Name, fr.SG).
			WithDetail("field", "sg")
	}
	return nil
}

func (fr *Fruit) String() string {
	return fmt.Sprintf("%s (%d PPG), %s at %s", fr.Name, fr.Potential(), fr.Quantity(), fr.Timing)
}

// mashed additions are converted at the mash efficiency. Sparge
// additions dissolve in the sparge water and never see the mash.
func extract(weight float64, ppg int, t timing.Timing, eff float64) float64 {
	ex := weight * float64(ppg)
	if t.AtOrBefore(timing.Lauter()) && !t.Is(timing.StageSparge) {
		ex *= eff
	}
	return ex
}

func checkExtract(kind Kind, name string, weight float64, ppg int) error {
	if weight < 0 {
		return negative(kind, name, "weight", weight)
	}
	if ppg <= 0 {
		return errors.Newf(errors.ErrInvalidIngredient, "%s %q: PPG must be a positive integer, got %d", kind, name, ppg).
			WithDetail("field", "ppg")
	}
	return nil
}

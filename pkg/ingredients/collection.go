package ingredients

import (
	"iter"
	"reflect"
	"slices"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
)

// Ingredients is an insertion-ordered collection. Queries return new
// collections and never modify the receiver.
type Ingredients struct {
	items []Ingredient
}

// New builds a collection, rejecting nil or invalid ingredients.
func New(items ...Ingredient) (*Ingredients, error) {
	c := &Ingredients{}
	if err := c.Append(items...); err != nil {
		return nil, err
	}
	return c, nil
}

// Must is New for literals known to be valid; it panics on error.
func Must(items ...Ingredient) *Ingredients {
	c, err := New(items...)
	if err != nil {
		panic(err)
	}
	return c
}

func from(items []Ingredient) *Ingredients {
	return &Ingredients{items: items}
}

func check(item Ingredient) error {
	if item == nil {
		return errors.New(errors.ErrInvalidIngredient, "cannot add a nil ingredient")
	}
	if v := reflect.ValueOf(item); v.Kind() == reflect.Pointer && v.IsNil() {
		return errors.Newf(errors.ErrInvalidIngredient, "cannot add a nil %T", item)
	}
	switch item.(type) {
	case *Fermentable, *Unfermentable, *Hop, *Spice, *Fruit, *Other, *Priming, *Water, *Culture:
	default:
		return errors.Newf(errors.ErrInvalidIngredient, "%T is not a recognised ingredient", item)
	}
	return item.Validate()
}

func (c *Ingredients) index(i int, allowEnd bool) error {
	limit := len(c.items)
	if allowEnd {
		limit++
	}
	if i < 0 || i >= limit {
		return errors.Newf(errors.ErrIndexOutOfRange, "index %d out of range for %d ingredients", i, len(c.items)).
			WithDetail("index", i).
			WithDetail("length", len(c.items))
	}
	return nil
}

// Append adds items at the end. Nothing is added if any item is rejected.
func (c *Ingredients) Append(items ...Ingredient) error {
	for _, item := range items {
		if err := check(item); err != nil {
			return err
		}
	}
	c.items = append(c.items, items...)
	return nil
}

// Insert places item before position i; i == Len() appends.
func (c *Ingredients) Insert(i int, item Ingredient) error {
	if err := c.index(i, true); err != nil {
		return err
	}
	if err := check(item); err != nil {
		return err
	}
	c.items = slices.Insert(c.items, i, item)
	return nil
}

// Set replaces the item at position i.
func (c *Ingredients) Set(i int, item Ingredient) error {
	if err := c.index(i, false); err != nil {
		return err
	}
	if err := check(item); err != nil {
		return err
	}
	c.items[i] = item
	return nil
}

// Remove deletes and returns the item at position i.
func (c *Ingredients) Remove(i int) (Ingredient, error) {
	if err := c.index(i, false); err != nil {
		return nil, err
	}
	item := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return item, nil
}

// At returns the item at position i.
func (c *Ingredients) At(i int) (Ingredient, error) {
	if err := c.index(i, false); err != nil {
		return nil, err
	}
	return c.items[i], nil
}

// Len returns the number of ingredients
func (c *Ingredients) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All iterates in insertion order.
func (c *Ingredients) All() iter.Seq2[int, Ingredient] {
	return func(yield func(int, Ingredient) bool) {
		if c == nil {
			return
		}
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Items returns a copy of the underlying slice.
func (c *Ingredients) Items() []Ingredient {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Predicate selects ingredients in Filter.
type Predicate func(Ingredient) bool

// Filter keeps the ingredients matching every predicate.
func (c *Ingredients) Filter(preds ...Predicate) *Ingredients {
	var out []Ingredient
	for _, item := range c.Items() {
		ok := true
		for _, p := range preds {
			if !p(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return from(out)
}

// OfKind matches any of kinds.
func OfKind(kinds ...Kind) Predicate {
	return func(i Ingredient) bool {
		return slices.Contains(kinds, i.Kind())
	}
}

// AtStage matches additions in any of stages.
func AtStage(stages ...timing.Stage) Predicate {
	return func(i Ingredient) bool {
		return slices.Contains(stages, i.Info().Timing.Stage())
	}
}

// Specified matches additions with a known timing.
func Specified() Predicate {
	return func(i Ingredient) bool { return i.Info().Timing.IsSpecified() }
}

// Grain matches fermentables flagged as grain.
func Grain() Predicate {
	return func(i Ingredient) bool {
		f, ok := i.(*Fermentable)
		return ok && f.Grain
	}
}

// FullyFermentable matches fermentables that ferment out completely.
func FullyFermentable() Predicate {
	return func(i Ingredient) bool {
		f, ok := i.(*Fermentable)
		return ok && f.FullyFermentable
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(i Ingredient) bool { return !p(i) }
}

func relative(t timing.Timing, keep func(int) bool) Predicate {
	return func(i Ingredient) bool {
		it := i.Info().Timing
		return it.IsSpecified() && keep(timing.Compare(it, t))
	}
}

// Before returns the additions strictly before t. Unspecified timings are
// never included.
func (c *Ingredients) Before(t timing.Timing) *Ingredients {
	return c.Filter(relative(t, func(r int) bool { return r < 0 }))
}

// AtOrBefore returns the additions at t or earlier.
func (c *Ingredients) AtOrBefore(t timing.Timing) *Ingredients {
	return c.Filter(relative(t, func(r int) bool { return r <= 0 }))
}

// After returns the additions strictly after t.
func (c *Ingredients) After(t timing.Timing) *Ingredients {
	return c.Filter(relative(t, func(r int) bool { return r > 0 }))
}

// ByKind returns the ingredients of any of kinds.
func (c *Ingredients) ByKind(kinds ...Kind) *Ingredients {
	return c.Filter(OfKind(kinds...))
}

// AtStage returns the additions made in any of stages.
func (c *Ingredients) AtStage(stages ...timing.Stage) *Ingredients {
	return c.Filter(AtStage(stages...))
}

// Fermentables includes fruit.
func (c *Ingredients) Fermentables() *Ingredients {
	return c.ByKind(KindFermentable, KindFruit)
}

func (c *Ingredients) Unfermentables() *Ingredients { return c.ByKind(KindUnfermentable) }
func (c *Ingredients) Grains() *Ingredients         { return c.Filter(Grain()) }
func (c *Ingredients) Sugars() *Ingredients         { return c.Filter(FullyFermentable()) }
func (c *Ingredients) Fruits() *Ingredients         { return c.ByKind(KindFruit) }
func (c *Ingredients) Hops() *Ingredients           { return c.ByKind(KindHop) }
func (c *Ingredients) Cultures() *Ingredients       { return c.ByKind(KindCulture) }
func (c *Ingredients) Spices() *Ingredients         { return c.ByKind(KindSpice) }
func (c *Ingredients) Waters() *Ingredients         { return c.ByKind(KindWater) }

// Extractables are all ingredients contributing gravity points,
// unfermentables included.
func (c *Ingredients) Extractables() *Ingredients {
	return c.ByKind(KindFermentable, KindFruit, KindUnfermentable)
}

// ExtractSources returns the gravity contributors in order.
func (c *Ingredients) ExtractSources() []ExtractSource {
	var out []ExtractSource
	for _, item := range c.Items() {
		if e, ok := item.(ExtractSource); ok {
			out = append(out, e)
		}
	}
	return out
}

// Extract sums the gravity points of every contributor.
func (c *Ingredients) Extract(efficiency float64) float64 {
	var total float64
	for _, e := range c.ExtractSources() {
		total += e.Extract(efficiency)
	}
	return total
}

// Weight sums the pounds of every gravity contributor.
func (c *Ingredients) Weight() float64 {
	var total float64
	for _, e := range c.ExtractSources() {
		total += e.Pounds()
	}
	return total
}

// Volume sums the physical volume added by fruit and water, in gallons.
func (c *Ingredients) Volume() float64 {
	var total float64
	for _, item := range c.Items() {
		if v, ok := item.(VolumeSource); ok {
			total += v.AddedVolume()
		}
	}
	return total
}

// HopList returns the hops in order.
func (c *Ingredients) HopList() []*Hop {
	var out []*Hop
	for _, item := range c.Items() {
		if h, ok := item.(*Hop); ok {
			out = append(out, h)
		}
	}
	return out
}

// CultureList returns the cultures in order.
func (c *Ingredients) CultureList() []*Culture {
	var out []*Culture
	for _, item := range c.Items() {
		if cu, ok := item.(*Culture); ok {
			out = append(out, cu)
		}
	}
	return out
}

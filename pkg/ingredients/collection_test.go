package ingredients_test

import (
	"testing"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(c *ingredients.Ingredients) []string {
	var out []string
	for _, item := range c.All() {
		out = append(out, item.Info().Name)
	}
	return out
}

func sample(t *testing.T) *ingredients.Ingredients {
	t.Helper()
	grain := mustFermentable(t, "AmericanTwoRow", 10)
	crystal := mustFermentable(t, "AmericanCaramel40", 1, ingredients.At(timing.Vorlauf()))
	sugar, err := ingredients.NewSugar("TableSugar", 1, ingredients.At(timing.Primary()))
	require.NoError(t, err)
	bittering, err := ingredients.NewHop("Magnum", 12, 1, ingredients.At(timing.Boil(60)))
	require.NoError(t, err)
	aroma, err := ingredients.NewHop("Citra", 12, 1, ingredients.At(timing.Boil(5)))
	require.NoError(t, err)
	water, err := ingredients.NewWater("Tap", 0)
	require.NoError(t, err)
	yeast, err := ingredients.NewCulture("AmericanAleUS05")
	require.NoError(t, err)

	c, err := ingredients.New(grain, crystal, bittering, aroma, sugar, water, yeast)
	require.NoError(t, err)
	return c
}

func TestQueries_Time(t *testing.T) {
	c := sample(t)

	tests := []struct {
		name string
		got  *ingredients.Ingredients
		want []string
	}{
		{"before_lauter", c.Before(timing.Lauter()), []string{"American 2-row", "American caramel 40"}},
		{"at_or_before_vorlauf", c.AtOrBefore(timing.Vorlauf()), []string{"American 2-row", "American caramel 40"}},
		{"before_vorlauf", c.Before(timing.Vorlauf()), []string{"American 2-row"}},
		{"at_or_before_boil_60", c.AtOrBefore(timing.Boil(60)), []string{"American 2-row", "American caramel 40", "Magnum"}},
		{"after_boil_60", c.After(timing.Boil(60)), []string{"Citra", "Table sugar", "US-05, American Ale"}},
		{"after_primary", c.After(timing.Primary()), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tt.got))
		})
	}
}

func TestQueries_UnspecifiedExcluded(t *testing.T) {
	c := sample(t)
	for _, q := range []*ingredients.Ingredients{
		c.Before(timing.Final()), c.AtOrBefore(timing.Final()), c.After(timing.Unspecified()),
	} {
		assert.NotContains(t, names(q), "Tap")
	}
	assert.Equal(t, []string{"Tap"}, names(c.Waters()))
}

func TestQueries_Kind(t *testing.T) {
	c := sample(t)

	assert.Equal(t, 3, c.Fermentables().Len())
	assert.Equal(t, []string{"American 2-row", "American caramel 40"}, names(c.Grains()))
	assert.Equal(t, []string{"Table sugar"}, names(c.Sugars()))
	assert.Equal(t, []string{"Magnum", "Citra"}, names(c.Hops()))
	assert.Len(t, c.HopList(), 2)
	assert.Len(t, c.CultureList(), 1)

	combined := c.Filter(ingredients.OfKind(ingredients.KindHop), ingredients.AtStage(timing.StageBoil),
		func(i ingredients.Ingredient) bool { return i.Info().Timing.Minutes() < 30 })
	assert.Equal(t, []string{"Citra"}, names(combined))

	notSugar := c.Fermentables().Filter(ingredients.Not(ingredients.FullyFermentable()))
	assert.Equal(t, 2, notSugar.Len())
}

func TestQueries_DoNotMutate(t *testing.T) {
	c := sample(t)
	before := names(c)
	_ = c.Before(timing.Boil(0))
	_ = c.Hops()
	assert.Equal(t, before, names(c))
}

func TestAggregates(t *testing.T) {
	c := sample(t)
	// 10*37*0.75 + 1*35*0.75 + 46
	assert.InDelta(t, 277.5+26.25+46, c.Extract(0.75), 1e-9)
	assert.InDelta(t, 12.0, c.Weight(), 1e-12)
	assert.InDelta(t, 0.0, c.Volume(), 1e-12)
}

func TestSequenceOperations(t *testing.T) {
	c := sample(t)
	n := c.Len()

	extra := mustHop(t, 5, 1, timing.HopStand(10))
	require.NoError(t, c.Insert(0, extra))
	first, err := c.At(0)
	require.NoError(t, err)
	assert.Same(t, extra, first)

	removed, err := c.Remove(0)
	require.NoError(t, err)
	assert.Same(t, extra, removed)
	assert.Equal(t, n, c.Len())

	require.NoError(t, c.Insert(c.Len(), extra))
	assert.Equal(t, n+1, c.Len())

	t.Run("out_of_range", func(t *testing.T) {
		_, err := c.At(100)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
		_, err = c.Remove(-1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
		err = c.Insert(c.Len()+1, extra)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
	})

	t.Run("nil_rejected", func(t *testing.T) {
		var hop *ingredients.Hop
		assert.True(t, errors.IsErrorCode(c.Append(nil), errors.ErrInvalidIngredient))
		assert.True(t, errors.IsErrorCode(c.Append(hop), errors.ErrInvalidIngredient))
		assert.True(t, errors.IsErrorCode(c.Set(0, nil), errors.ErrInvalidIngredient))
	})

	t.Run("invalid_rejected_atomically", func(t *testing.T) {
		before := c.Len()
		bad := &ingredients.Hop{Base: ingredients.Base{Name: "Bad", Timing: timing.Boil(-1)}}
		err := c.Append(mustHop(t, 5, 1, timing.Boil(1)), bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidIngredient))
		assert.Equal(t, before, c.Len())
	})
}

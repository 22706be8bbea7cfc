package brew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/fermentation"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/timing"
)

func mustBrew(t *testing.T, volume float64, values map[string]any, items ...ingredients.Ingredient) *brew.Brew {
	t.Helper()
	ing, err := ingredients.New(items...)
	require.NoError(t, err)
	b, err := brew.FromValues(ing, volume, values)
	require.NoError(t, err)
	return b
}

func grain(t *testing.T, key string, weight float64) *ingredients.Fermentable {
	t.Helper()
	f, err := ingredients.NewFermentable(key, weight)
	require.NoError(t, err)
	return f
}

func culture(t *testing.T, key string) *ingredients.Culture {
	t.Helper()
	c, err := ingredients.NewCulture(key)
	require.NoError(t, err)
	return c
}

func cascade(t *testing.T, whole bool) *ingredients.Hop {
	t.Helper()
	h, err := ingredients.NewHop("Cascade", 7.0, 1.0, ingredients.At(timing.Boil(60)))
	require.NoError(t, err)
	h.Whole = whole
	return h
}

func basicAle(t *testing.T, whole bool) *brew.Brew {
	t.Helper()
	return mustBrew(t, 5.5, map[string]any{"efficiency": 0.75},
		grain(t, "AmericanTwoRow", 10),
		cascade(t, whole),
		culture(t, "AmericanAleUS05"),
	)
}

func TestBasicAle(t *testing.T) {
	tests := []struct {
		name  string
		whole bool
		ibu   float64
	}{
		{"pellets", false, 22.7},
		{"whole leaf", true, 22.7 * 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := basicAle(t, tt.whole).Evaluate()
			require.NoError(t, err)

			assert.InDelta(t, 1.046, ev.Boil.PostBoil.Gravity, 0.0005)
			assert.InDelta(t, 6.0, ev.Boil.PostBoil.Volume, 1e-12)
			assert.InDelta(t, tt.ibu, ev.Boil.PostBoil.Bitterness, 0.1)
			require.Len(t, ev.Boil.Hops, 1)
			assert.InDelta(t, 60.0, ev.Boil.Hops[0].Minutes, 1e-12)
		})
	}
}

func TestBasicAle_WholeLeafIsScaledPellet(t *testing.T) {
	pellet, err := basicAle(t, false).Evaluate()
	require.NoError(t, err)
	whole, err := basicAle(t, true).Evaluate()
	require.NoError(t, err)

	assert.InDelta(t, pellet.Boil.PostBoil.Bitterness*0.85, whole.Boil.PostBoil.Bitterness, 1e-9)
}

func TestBasicAle_Stages(t *testing.T) {
	ev, err := basicAle(t, false).Evaluate()
	require.NoError(t, err)

	// kettle holds target + kettle gap + one hour of boil-off
	assert.InDelta(t, 7.0, ev.Mash.Wort.Volume, 1e-12)
	assert.InDelta(t, 1+277.5/7.0/1000, ev.Mash.Wort.Gravity, 1e-12)
	assert.Equal(t, ev.Mash.Wort, ev.Boil.PreBoil)

	beer := ev.Ferment.Beer
	assert.InDelta(t, 1.04625, beer.SG, 1e-12)
	assert.InDelta(t, fermentation.FinalGravity(1.04625, 152, 81), beer.FG, 1e-12)
	assert.InDelta(t, ev.Boil.PostBoil.Bitterness, beer.Bitterness, 1e-12)
	assert.Equal(t, "US-05, American Ale", ev.Ferment.Estimate.Culture.Name)
	assert.Greater(t, beer.ABV(), 4.5)
}

func TestEvaluate_Idempotent(t *testing.T) {
	b := basicAle(t, false)

	first, err := b.Evaluate()
	require.NoError(t, err)
	second, err := b.Evaluate()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, b.Ingredients.Len())
}

func TestVolume(t *testing.T) {
	fruit, err := ingredients.NewFruit("Raspberry", 1.040, 6)
	require.NoError(t, err)
	b := mustBrew(t, 5, nil, grain(t, "AmericanTwoRow", 10), fruit)

	assert.InDelta(t, 5.5, b.Volume(timing.Boil(0), false), 1e-12)
	assert.InDelta(t, 6.0, b.Volume(timing.Boil(30), false), 1e-12)
	assert.InDelta(t, 6.5, b.Volume(timing.Lauter(), false), 1e-12)
	assert.InDelta(t, 5.5, b.Volume(timing.Primary(), true), 1e-12)
	assert.InDelta(t, 5.0, b.Volume(timing.Primary(), false), 1e-12)
	assert.InDelta(t, 5+6.0/8, b.Volume(timing.Final(), false), 1e-12)
}

func TestExtract(t *testing.T) {
	sugar, err := ingredients.NewSugar("TableSugar", 1, ingredients.At(timing.Primary()))
	require.NoError(t, err)
	b := mustBrew(t, 5, map[string]any{"efficiency": 0.75}, grain(t, "GermanPilsner", 10), sugar)

	assert.InDelta(t, 277.5, b.Extract(timing.Lauter(), false), 1e-9)
	assert.InDelta(t, 277.5, b.Extract(timing.Primary(), true), 1e-9)
	assert.InDelta(t, 323.5, b.Extract(timing.Final(), false), 1e-9)
}

func TestInfusion(t *testing.T) {
	b := mustBrew(t, 5, map[string]any{
		"r_mash":   1.5,
		"t_sacc":   150,
		"mash_out": true,
		"t_grain":  70,
	}, grain(t, "AmericanTwoRow", 10))

	in, err := b.Infusion()
	require.NoError(t, err)

	require.Len(t, in.Steps, 2)
	assert.InDelta(t, 160.67, in.Steps[0].WaterTemp, 0.005)
	assert.InDelta(t, 3.75, in.Steps[0].Volume, 1e-12)
	assert.InDelta(t, 200.0, in.Steps[1].WaterTemp, 1e-12)
	assert.InDelta(t, 1.7, in.Steps[1].Volume, 1e-12)
	assert.InDelta(t, 8.0, b.Volume(timing.Sparge(), false), 1e-12)
	assert.InDelta(t, 2.55, in.Sparge, 1e-12)
	assert.InDelta(t, 6.5, in.Collected, 1e-12)
	assert.InDelta(t, 5.45*4/10, in.Ratio(), 1e-12)
}

func TestInfusion_NegativeSparge(t *testing.T) {
	b := mustBrew(t, 5.5, map[string]any{"r_mash": 5},
		grain(t, "AmericanTwoRow", 10),
		culture(t, "AmericanAleUS05"),
	)

	_, err := b.Infusion()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNegativeSparge))
	assert.Less(t, errors.GetErrorDetails(err)["sparge"], 0.0)

	_, err = b.Evaluate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNegativeSparge))
}

func TestFerment_MixedCulturePicksLowestFG(t *testing.T) {
	b := mustBrew(t, 5.5, map[string]any{"efficiency": 0.75},
		grain(t, "AmericanTwoRow", 10),
		culture(t, "EnglishAle"),
		culture(t, "AmericanAleUS05"),
	)

	ev, err := b.Evaluate()
	require.NoError(t, err)

	sg := ev.Ferment.Beer.SG
	want := min(
		fermentation.FinalGravity(sg, 152, 66.5),
		fermentation.FinalGravity(sg, 152, 81),
	)
	assert.InDelta(t, want, ev.Ferment.Beer.FG, 1e-12)
	assert.Equal(t, "AmericanAleUS05", ev.Ferment.Estimate.Culture.Key)
}

func TestFerment_SugarsFermentOut(t *testing.T) {
	sugar, err := ingredients.NewSugar("TableSugar", 1, ingredients.At(timing.Primary()))
	require.NoError(t, err)
	b := mustBrew(t, 5.5, map[string]any{"efficiency": 0.75},
		grain(t, "AmericanTwoRow", 10), sugar, culture(t, "AmericanAleUS05"))

	ev, err := b.Evaluate()
	require.NoError(t, err)

	sg := ev.Ferment.Beer.SG
	assert.InDelta(t, 1+(254.375+46)/5.5/1000, sg, 1e-12)
	grainSG := 1 + (sg-1)*277.5/323.5
	assert.InDelta(t, fermentation.FinalGravity(grainSG, 152, 81), ev.Ferment.Beer.FG, 1e-12)
}

func TestFerment_UnfermentablesRemain(t *testing.T) {
	lactose, err := ingredients.CustomUnfermentable("Lactose", 35, 1, ingredients.At(timing.Boil(10)))
	require.NoError(t, err)
	b := mustBrew(t, 5.5, map[string]any{"efficiency": 0.75},
		grain(t, "AmericanTwoRow", 10), lactose, culture(t, "AmericanAleUS05"))

	ev, err := b.Evaluate()
	require.NoError(t, err)

	sg := ev.Ferment.Beer.SG
	unfermentable := (sg - 1) * 35 / (277.5 + 35)
	assert.InDelta(t, ev.Ferment.Estimate.FinalGravity+unfermentable, ev.Ferment.Beer.FG, 1e-12)
}

func TestFerment_AttenuationOverride(t *testing.T) {
	b := mustBrew(t, 5.5, map[string]any{"efficiency": 0.75, "attenuation": 70},
		grain(t, "AmericanTwoRow", 10))

	ev, err := b.Evaluate()
	require.NoError(t, err)

	assert.Nil(t, ev.Ferment.Estimate.Culture)
	assert.InDelta(t, fermentation.FinalGravity(ev.Ferment.Beer.SG, 152, 70), ev.Ferment.Beer.FG, 1e-12)
}

func TestFerment_NoCulture(t *testing.T) {
	b := mustBrew(t, 5.5, nil, grain(t, "AmericanTwoRow", 10))

	_, err := b.Evaluate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoCulture))
}

func TestFerment_DilutesBitterness(t *testing.T) {
	water, err := ingredients.NewWater("Top-up", 1.1, ingredients.At(timing.Secondary()))
	require.NoError(t, err)
	b := mustBrew(t, 5.5, map[string]any{"efficiency": 0.75},
		grain(t, "AmericanTwoRow", 10), cascade(t, false), water, culture(t, "AmericanAleUS05"))

	ev, err := b.Evaluate()
	require.NoError(t, err)

	assert.InDelta(t, 6.6, ev.Ferment.FinalVolume, 1e-12)
	assert.InDelta(t, ev.Boil.PostBoil.Bitterness*5.5/6.6, ev.Ferment.Beer.Bitterness, 1e-12)
	assert.InDelta(t, 1+254.375/6.6/1000, ev.Ferment.Beer.SG, 1e-12)
}

func TestHopStand(t *testing.T) {
	stand, err := ingredients.NewHop("Citra", 12, 2, ingredients.At(timing.HopStand(20)))
	require.NoError(t, err)

	assert.False(t, basicAle(t, false).HopStand())
	assert.True(t, mustBrew(t, 5.5, map[string]any{"hop_stand": true}).HopStand())
	assert.True(t, mustBrew(t, 5.5, nil, stand).HopStand())
}

func TestStrikeWaterTemp(t *testing.T) {
	assert.InDelta(t, 160.6667, brew.StrikeWaterTemp(1.5, 70, 150), 1e-4)
	assert.InDelta(t, 6.8, brew.InfusionVolume(15, 10, 150, 170, 200), 1e-12)
}

func TestNew_Validation(t *testing.T) {
	ing := ingredients.Must()

	_, err := brew.New(nil, 5, brew.Defaults())
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = brew.New(ing, 0, brew.Defaults())
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = brew.FromValues(ing, 5, map[string]any{"efficiency": 1.2})
	assert.True(t, errors.IsErrorCode(err, errors.ErrParameterInvalid))
	assert.Equal(t, "efficiency", errors.GetErrorDetails(err)["key"])
}

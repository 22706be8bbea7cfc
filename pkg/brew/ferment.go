package brew

import (
	"github.com/arthur-debert/wort/pkg/fermentation"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/logging"
	"github.com/arthur-debert/wort/pkg/timing"
	"github.com/arthur-debert/wort/pkg/wort"
)

// FermentResult is the finished beer and how the estimate was reached.
type FermentResult struct {
	Beer     fermentation.Beer
	Estimate fermentation.Estimate
	// PrimaryVolume is the wort racked into the primary, gal.
	PrimaryVolume float64
	// FinalVolume includes later fruit and water additions, gal.
	FinalVolume float64
}

// Ferment ferments the boiled wort. Additions after the boil dilute the
// bitterness and add their extract. Fully fermentable sugars ferment out;
// the cultures attenuate the rest, the most attenuative one winning, and
// unfermentables are added back onto the final gravity.
func (b *Brew) Ferment(boiled wort.Wort) (FermentResult, error) {
	logger := logging.GetLogger("brew.ferment")
	p := b.Params
	eff := p.Efficiency

	vPrimary := boiled.Volume - p.KettleGap
	vFinal := b.Volume(timing.Final(), false)

	exPrimary := b.Extract(timing.Primary(), true)
	exFinal := b.Extract(timing.Final(), false)
	exWort := vPrimary * (boiled.Gravity - 1) * 1000
	sg := 1 + (exWort+exFinal-exPrimary)/vFinal/1000

	// split the starting gravity into what cultures attenuate and what
	// survives fermentation
	grainSG, unfermentableSG := 1.0, 1.0
	if exFinal > 0 {
		added := b.Ingredients.Extractables().AtOrBefore(timing.Final())
		attenuable := added.Filter(
			ingredients.OfKind(ingredients.KindFermentable, ingredients.KindFruit),
			ingredients.Not(ingredients.FullyFermentable()),
		).Extract(eff)
		unfermentable := added.Unfermentables().Extract(eff)

		grainSG = 1 + (sg-1)*attenuable/exFinal
		unfermentableSG = 1 + (sg-1)*unfermentable/exFinal
	}

	est, err := fermentation.Attenuate(grainSG, fermentation.MeanTemp(p.TSacc),
		b.Ingredients.CultureList(), p.Attenuation)
	if err != nil {
		return FermentResult{}, err
	}

	beer := fermentation.Beer{
		SG:         sg,
		FG:         est.FinalGravity + (unfermentableSG - 1),
		Bitterness: boiled.Bitterness * vPrimary / vFinal,
	}

	logger.Debug().
		Float64("sg", beer.SG).
		Float64("fg", beer.FG).
		Float64("ibu", beer.Bitterness).
		Msg("Fermentation complete")

	return FermentResult{
		Beer:          beer,
		Estimate:      est,
		PrimaryVolume: vPrimary,
		FinalVolume:   vFinal,
	}, nil
}

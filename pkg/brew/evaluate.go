package brew

import (
	"github.com/arthur-debert/wort/pkg/fermentation"
	"github.com/arthur-debert/wort/pkg/logging"
)

// Evaluation is the full prediction for a recipe.
type Evaluation struct {
	Mash    MashResult
	Boil    BoilResult
	Ferment FermentResult
}

// Beer is a shortcut for the finished product
func (e Evaluation) Beer() fermentation.Beer { return e.Ferment.Beer }

// Evaluate runs mash, boil and fermentation in order. The first failing
// stage aborts the evaluation; there are no partial results.
func (b *Brew) Evaluate() (Evaluation, error) {
	logger := logging.GetLogger("brew")
	done := logging.LogOperationStart(logger, "evaluate")
	defer done()

	mash, err := b.Mash()
	if err != nil {
		return Evaluation{}, err
	}

	boil := b.Boil(mash.Wort)

	ferment, err := b.Ferment(boil.PostBoil)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{Mash: mash, Boil: boil, Ferment: ferment}, nil
}

package brew

import (
	"github.com/arthur-debert/wort/pkg/logging"
	"github.com/arthur-debert/wort/pkg/timing"
	"github.com/arthur-debert/wort/pkg/wort"
)

// BoilResult is the kettle before and after the boil.
type BoilResult struct {
	PreBoil wort.Wort
	// PostBoil carries the total bitterness of the boil.
	PostBoil wort.Wort
	Hops     []wort.HopRow
	HopStand bool
}

// Boil boils preboil down to the post-boil volume and isomerizes the hops.
// Utilization uses the post-boil gravity; the bitterness is diluted into
// the wort that reaches the primary, i.e. the post-boil volume less the
// kettle gap.
func (b *Brew) Boil(preboil wort.Wort) BoilResult {
	logger := logging.GetLogger("brew.boil")
	p := b.Params

	volume := b.Volume(timing.Primary(), true)
	post := wort.Wort{
		Gravity: 1 + b.Extract(timing.Primary(), true)/volume/1000,
		Volume:  volume,
	}

	hopStand := b.HopStand()
	bitterness := b.calculator().Bitterness(wort.BoilConditions{
		Gravity:  post.Gravity,
		Volume:   volume - p.KettleGap,
		BoilTime: p.BoilTime,
		HopStand: hopStand,
	})
	post.Bitterness = bitterness.Total

	logger.Debug().
		Float64("volume", post.Volume).
		Float64("gravity", post.Gravity).
		Float64("ibu", post.Bitterness).
		Bool("hopStand", hopStand).
		Msg("Boil complete")

	return BoilResult{
		PreBoil:  preboil,
		PostBoil: post,
		Hops:     bitterness.Rows,
		HopStand: hopStand,
	}
}

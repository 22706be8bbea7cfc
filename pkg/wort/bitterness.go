package wort

import (
	"math"

	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/logging"
	"github.com/arthur-debert/wort/pkg/timing"
)

// HopStandMinutes is the steeping time credited to a hop stand, and the
// extra time boil additions get when one follows the boil.
const HopStandMinutes = 5

// Utilization is the Tinseth hop utilization in percent after minutes in
// wort of gravity sg. Whole leaf hops get WholeLeafFactor of the pellet
// value.
func Utilization(minutes, sg float64, whole bool) float64 {
	u := 1.65 * math.Pow(0.000125, sg-1) * (1 - math.Exp(-0.04*minutes)) / 4.15
	if whole {
		u *= ingredients.WholeLeafFactor
	}
	return u * 100
}

// IBU from utilization and alpha in percent, weight in ounces, volume in
// gallons.
func IBU(utilization, weight, alpha, volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	return 0.746 * utilization * weight * alpha / volume
}

// BoilMinutes is how long a hop addition isomerizes. Mash and first wort
// hops see the whole boil plus HopStandMinutes, hop stand additions
// HopStandMinutes, and boil additions their remaining minutes (plus
// HopStandMinutes when a hop stand follows). Other timings contribute
// nothing and return false.
func BoilMinutes(t timing.Timing, boilTime float64, hopStand bool) (float64, bool) {
	switch t.Stage() {
	case timing.StageMash, timing.StageFirstWort:
		return boilTime + HopStandMinutes, true
	case timing.StageHopStand:
		return HopStandMinutes, true
	case timing.StageBoil:
		m := t.Minutes()
		if hopStand {
			m += HopStandMinutes
		}
		return m, true
	}
	return 0, false
}

// HopRow is one hop's contribution, kept for reporting.
type HopRow struct {
	Hop         *ingredients.Hop
	Minutes     float64
	Utilization float64
	IBU         float64
}

// Bitterness is the per-hop breakdown and its total.
type Bitterness struct {
	Rows  []HopRow
	Total float64
}

// BoilConditions are the kettle parameters bitterness depends on.
type BoilConditions struct {
	// Gravity used for utilization
	Gravity float64
	// Volume the iso-alpha acids end up in, gallons
	Volume   float64
	BoilTime float64
	HopStand bool
}

// Bitterness computes every hop's IBU contribution under bc. Rows keep
// the insertion order of the hops.
func (c Calculator) Bitterness(bc BoilConditions) Bitterness {
	logger := logging.GetLogger("wort.bitterness")

	var b Bitterness
	for _, h := range c.Ingredients.HopList() {
		row := HopRow{Hop: h}
		if m, ok := BoilMinutes(h.Timing, bc.BoilTime, bc.HopStand); ok {
			row.Minutes = m
			row.Utilization = Utilization(m, bc.Gravity, h.Whole)
			row.IBU = IBU(row.Utilization, h.Weight, h.Alpha, bc.Volume)
		}
		logger.Trace().
			Str("hop", h.Name).
			Str("timing", h.Timing.String()).
			Float64("minutes", row.Minutes).
			Float64("ibu", row.IBU).
			Msg("Hop contribution")
		b.Rows = append(b.Rows, row)
		b.Total += row.IBU
	}
	return b
}

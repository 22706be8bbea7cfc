package fermentation

import "github.com/arthur-debert/wort/pkg/gravity"

// Beer is the finished product. Derived figures are computed from the two
// gravities on each call.
type Beer struct {
	// SG is the starting gravity
	SG float64
	// FG is the final gravity
	FG float64
	// Bitterness in IBU
	Bitterness float64
}

func (b Beer) ApparentAttenuation() float64 { return gravity.ApparentAttenuation(b.SG, b.FG) }
func (b Beer) RealAttenuation() float64     { return gravity.RealAttenuation(b.SG, b.FG) }
func (b Beer) RealExtract() float64         { return gravity.RealExtract(b.SG, b.FG) }
func (b Beer) ABW() float64                 { return gravity.ABW(b.SG, b.FG) }
func (b Beer) ABV() float64                 { return gravity.ABV(b.SG, b.FG) }

// Calories per 12 oz
func (b Beer) Calories() float64 { return gravity.Calories(b.SG, b.FG) }

func (b Beer) CaloriesFromAlcohol() float64 { return gravity.CaloriesFromAlcohol(b.SG, b.FG) }
func (b Beer) CaloriesFromExtract() float64 { return gravity.CaloriesFromExtract(b.SG, b.FG) }
func (b Beer) CaloriesFromProtein() float64 { return gravity.CaloriesFromProtein(b.SG, b.FG) }

// Carbohydrates in grams per 12 oz
func (b Beer) Carbohydrates() float64 { return gravity.Carbohydrates(b.SG, b.FG) }

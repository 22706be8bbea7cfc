package gravity

// RealExtract is the true remaining extract, °P.
func RealExtract(og, fg float64) float64 {
	oe := SGToPlato(og)
	ae := SGToPlato(fg)
	q := 0.22 + 0.001*oe
	return (q*oe + ae) / (1 + q)
}

// ApparentAttenuation in percent, from raw gravity readings.
func ApparentAttenuation(og, fg float64) float64 {
	if og == 1 {
		return 0
	}
	return 100 * (og - fg) / (og - 1)
}

// RealAttenuation in percent, corrected for alcohol.
func RealAttenuation(og, fg float64) float64 {
	oe := SGToPlato(og)
	if oe == 0 {
		return 0
	}
	return (oe - RealExtract(og, fg)) / oe * 100
}

// ABW is alcohol by weight, percent.
func ABW(og, fg float64) float64 {
	oe := SGToPlato(og)
	return (oe - RealExtract(og, fg)) / (2.0665 - 0.010665*oe)
}

// ABV is alcohol by volume, percent.
func ABV(og, fg float64) float64 {
	return ABW(og, fg) * fg / 0.794
}

func CaloriesFromAlcohol(og, fg float64) float64 {
	return 25.2 * fg * ABW(og, fg)
}

func CaloriesFromExtract(og, fg float64) float64 {
	return 13.5 * fg * RealExtract(og, fg)
}

func CaloriesFromProtein(og, fg float64) float64 {
	return 0.994 * fg * RealExtract(og, fg)
}

// Calories is the total per 12 oz.
func Calories(og, fg float64) float64 {
	return CaloriesFromAlcohol(og, fg) + CaloriesFromExtract(og, fg) + CaloriesFromProtein(og, fg)
}

// Carbohydrates in grams per 12 oz.
func Carbohydrates(og, fg float64) float64 {
	return CaloriesFromExtract(og, fg) / 3.8
}

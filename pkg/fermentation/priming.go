package fermentation

import (
	"slices"
	"strings"

	"github.com/arthur-debert/wort/pkg/errors"
)

// Sugar is a priming sugar
type Sugar string

const (
	CornSugar      Sugar = "corn sugar"
	TableSugar     Sugar = "table sugar"
	DryMaltExtract Sugar = "dry malt extract"
	Honey          Sugar = "honey"
)

// relative to corn sugar
var primingScale = map[Sugar]float64{
	CornSugar:      1.0,
	TableSugar:     0.95,
	DryMaltExtract: 1.54,
	Honey:          1.11,
}

// Sugars lists the supported priming sugars
func Sugars() []Sugar {
	return []Sugar{CornSugar, TableSugar, DryMaltExtract, Honey}
}

// ParseSugar resolves a sugar name case-insensitively.
func ParseSugar(name string) (Sugar, error) {
	s := Sugar(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := primingScale[s]; ok {
		return s, nil
	}
	valid := make([]string, 0, len(primingScale))
	for _, k := range Sugars() {
		valid = append(valid, string(k))
	}
	slices.Sort(valid)
	return "", errors.Newf(errors.ErrInvalidInput, "unknown priming sugar %q", name).
		WithDetail("valid_keys", valid)
}

// PrimingSugar is the weight in ounces of sugar needed to carbonate
// gallons of beer to volumesCO2, given the warmest temperature, °F, the
// beer reached after fermentation (Brad Smith, BYO May-Jun 2015).
func PrimingSugar(tempF, volumesCO2, gallons float64, sugar Sugar) (float64, error) {
	scale, ok := primingScale[sugar]
	if !ok {
		_, err := ParseSugar(string(sugar))
		return 0, err
	}
	if gallons < 0 || volumesCO2 < 0 {
		return 0, errors.New(errors.ErrInvalidInput, "volume and CO2 level must not be negative")
	}
	corn := 0.5360 * gallons * ((volumesCO2 - 3.0378) + 0.050*tempF - 0.0002655*tempF*tempF)
	return scale * corn, nil
}

package brew

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/wort/pkg/errors"
)

// MashOutTemp is the mash-out step temperature, °F.
const MashOutTemp = 170.0

// Params are the equipment and process settings of a brew day.
type Params struct {
	// RMash is the water to grain ratio of the strike, qt/lb.
	RMash float64 `mapstructure:"r_mash"`
	// Absorption is water retained by spent grain, qt/lb.
	Absorption float64 `mapstructure:"absorption"`
	// TGrain is the dry grain temperature, °F.
	TGrain float64 `mapstructure:"t_grain"`
	// TWater is the temperature of infusion water after the strike, °F.
	TWater float64 `mapstructure:"t_water"`
	// TRest are rest temperatures before saccharification, °F.
	TRest []float64 `mapstructure:"t_rest"`
	// TSacc are saccharification temperatures, °F.
	TSacc   []float64 `mapstructure:"t_sacc"`
	MashOut bool      `mapstructure:"mash_out"`
	// Efficiency of the mash and lauter, in (0, 1].
	Efficiency float64 `mapstructure:"efficiency"`
	// MLTGap is dead volume left in the mash tun, gal.
	MLTGap float64 `mapstructure:"mlt_gap"`
	// BoilTime in minutes
	BoilTime float64 `mapstructure:"boil_time"`
	// RBoil is the boil-off rate, gal/h.
	RBoil    float64 `mapstructure:"r_boil"`
	HopStand bool    `mapstructure:"hop_stand"`
	// KettleGap is wort left behind in the kettle, gal.
	KettleGap float64 `mapstructure:"kettle_gap"`
	// Attenuation overrides culture data when set, percent.
	Attenuation *float64 `mapstructure:"attenuation"`
}

// DefaultValues is the built-in parameter set as a plain mapping.
func DefaultValues() map[string]any {
	return map[string]any{
		"r_mash":     2.8,
		"absorption": 0.5,
		"t_grain":    65.0,
		"t_water":    200.0,
		"t_rest":     []float64{},
		"t_sacc":     []float64{152},
		"mash_out":   false,
		"efficiency": 0.65,
		"mlt_gap":    0.25,
		"boil_time":  60.0,
		"r_boil":     1.0,
		"hop_stand":  false,
		"kettle_gap": 0.5,
	}
}

// Keys lists every accepted parameter name, attenuation included.
func Keys() []string {
	keys := slices.Collect(maps.Keys(DefaultValues()))
	keys = append(keys, "attenuation")
	slices.Sort(keys)
	return keys
}

// Defaults returns the built-in parameters.
func Defaults() Params {
	p, err := DecodeParams(nil)
	if err != nil {
		panic(fmt.Sprintf("built-in parameters do not decode: %v", err))
	}
	return p
}

// DecodeParams resolves a key → value mapping on top of the defaults.
// Values are weakly typed: "0.7" decodes as 0.7, a single temperature as
// a one-step list, and "150,154" as two steps. Unknown keys are an error.
func DecodeParams(values map[string]any) (Params, error) {
	merged := DefaultValues()
	valid := Keys()
	for k, v := range values {
		key := strings.ToLower(strings.TrimSpace(k))
		if !slices.Contains(valid, key) {
			return Params{}, errors.Newf(errors.ErrParameterInvalid, "%q is not a parameter", k).
				WithDetail("key", k).
				WithDetail("valid_keys", valid)
		}
		merged[key] = v
	}

	var p Params
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
		DecodeHook:       mapstructure.StringToWeakSliceHookFunc(","),
	})
	if err != nil {
		return Params{}, errors.Wrap(err, errors.ErrInternal, "cannot build parameter decoder")
	}
	if err := decoder.Decode(merged); err != nil {
		return Params{}, errors.Wrap(err, errors.ErrParameterInvalid, "cannot decode parameters")
	}
	return p, nil
}

// Values renders p back to a key → value mapping, the inverse of
// DecodeParams.
func (p Params) Values() map[string]any {
	m := map[string]any{
		"r_mash":     p.RMash,
		"absorption": p.Absorption,
		"t_grain":    p.TGrain,
		"t_water":    p.TWater,
		"t_rest":     slices.Clone(p.TRest),
		"t_sacc":     slices.Clone(p.TSacc),
		"mash_out":   p.MashOut,
		"efficiency": p.Efficiency,
		"mlt_gap":    p.MLTGap,
		"boil_time":  p.BoilTime,
		"r_boil":     p.RBoil,
		"hop_stand":  p.HopStand,
		"kettle_gap": p.KettleGap,
	}
	if p.Attenuation != nil {
		m["attenuation"] = *p.Attenuation
	}
	return m
}

// MashTemps is the mash schedule: rests, saccharification steps, then
// mash-out when enabled.
func (p Params) MashTemps() []float64 {
	temps := append(slices.Clone(p.TRest), p.TSacc...)
	if p.MashOut {
		temps = append(temps, MashOutTemp)
	}
	return temps
}

func invalid(key, format string, args ...any) error {
	return errors.Newf(errors.ErrParameterInvalid, format, args...).WithDetail("key", key)
}

// Validate checks ranges and the consistency of the mash schedule.
func (p Params) Validate() error {
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return invalid("efficiency", "efficiency must be in (0, 1], got %g", p.Efficiency)
	}
	if p.RMash <= 0 {
		return invalid("r_mash", "mash ratio must be positive, got %g", p.RMash)
	}

	nonNegative := []struct {
		key string
		v   float64
	}{
		{"absorption", p.Absorption},
		{"mlt_gap", p.MLTGap},
		{"boil_time", p.BoilTime},
		{"r_boil", p.RBoil},
		{"kettle_gap", p.KettleGap},
	}
	for _, nn := range nonNegative {
		if nn.v < 0 {
			return invalid(nn.key, "%s must not be negative, got %g", nn.key, nn.v)
		}
	}

	temps := p.MashTemps()
	if len(temps) == 0 {
		return invalid("t_sacc", "the mash needs at least one temperature step")
	}
	for _, t := range temps[:len(temps)-1] {
		if p.TWater <= t {
			return invalid("t_water", "infusion water at %g °F cannot raise a mash at %g °F", p.TWater, t)
		}
	}

	if a := p.Attenuation; a != nil && (*a < 0 || *a > 100) {
		return invalid("attenuation", "attenuation must be a percentage, got %g", *a)
	}
	return nil
}

package recipe

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/timing"
)

// fields is the union of every ingredient tag's keys.
type fields struct {
	Name        string       `yaml:"name,omitempty"`
	Culture     string       `yaml:"culture,omitempty"`
	PPG         any          `yaml:"ppg,omitempty"`
	SG          float64      `yaml:"sg,omitempty"`
	Alpha       float64      `yaml:"alpha,omitempty"`
	Beta        *float64     `yaml:"beta,omitempty"`
	Weight      float64      `yaml:"weight,omitempty"`
	Volume      float64      `yaml:"volume,omitempty"`
	Quantity    string       `yaml:"quantity,omitempty"`
	Density     *float64     `yaml:"density,omitempty"`
	Grain       *bool        `yaml:"grain,omitempty"`
	Fermentable *bool        `yaml:"fermentable,omitempty"`
	Whole       bool         `yaml:"whole,omitempty"`
	Attenuation []float64    `yaml:"attenuation,omitempty,flow"`
	Timing      *timingValue `yaml:"timing,omitempty"`
	Desc        string       `yaml:"desc,omitempty"`
}

var common = []string{"name", "timing", "desc"}

// tagKeys lists the keys each tag accepts besides name, timing and desc.
var tagKeys = map[string][]string{
	"!Fermentable":   {"ppg", "weight", "grain", "fermentable"},
	"!Grain":         {"ppg", "weight"},
	"!Sugar":         {"ppg", "weight"},
	"!Unfermentable": {"ppg", "weight"},
	"!Fruit":         {"sg", "weight", "density"},
	"!Hop":           {"alpha", "beta", "weight", "whole"},
	"!Water":         {"volume"},
	"!Spice":         {"quantity"},
	"!Other":         {"quantity"},
	"!Priming":       {"quantity"},
	"!Culture":       {"culture", "quantity", "attenuation"},
}

func tags() []string {
	out := make([]string, 0, len(tagKeys))
	for tag := range tagKeys {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func parseError(node *yaml.Node, format string, args ...any) *errors.WortError {
	return errors.Newf(errors.ErrRecipeParse, "line %d: %s", node.Line, fmt.Sprintf(format, args...)).
		WithDetail("line", node.Line)
}

// decodeIngredient builds an ingredient from a tagged mapping.
func decodeIngredient(node *yaml.Node) (ingredients.Ingredient, error) {
	allowed, ok := tagKeys[node.Tag]
	if !ok || node.Kind != yaml.MappingNode {
		return nil, parseError(node, "expected a tagged ingredient, got %q", node.Tag).
			WithDetail("valid_keys", tags())
	}
	allowed = append(slices.Clone(common), allowed...)
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !slices.Contains(allowed, key) {
			return nil, parseError(node.Content[i], "%s does not take %q", node.Tag, key).
				WithDetail("key", key).
				WithDetail("valid_keys", allowed)
		}
	}

	var f fields
	if err := node.Decode(&f); err != nil {
		return nil, err
	}

	opts := []ingredients.Option{ingredients.Described(f.Desc)}
	if f.Timing != nil {
		opts = append(opts, ingredients.At(f.Timing.Timing))
	}

	switch node.Tag {
	case "!Fermentable", "!Grain", "!Sugar":
		return decodeFermentable(node, f, opts)
	case "!Unfermentable":
		key, ppg, err := ppgOf(node, f)
		if err != nil {
			return nil, err
		}
		if key != "" {
			return ingredients.NewUnfermentable(key, f.Weight, append(opts, ingredients.Named(f.Name))...)
		}
		return ingredients.CustomUnfermentable(f.Name, ppg, f.Weight, opts...)
	case "!Fruit":
		fr, err := ingredients.NewFruit(f.Name, f.SG, f.Weight, opts...)
		if err != nil || f.Density == nil {
			return fr, err
		}
		fr.Density = *f.Density
		return fr, fr.Validate()
	case "!Hop":
		h, err := ingredients.NewHop(f.Name, f.Alpha, f.Weight, opts...)
		if err != nil {
			return nil, err
		}
		h.Whole = f.Whole
		h.Beta = f.Beta
		return h, h.Validate()
	case "!Water":
		return ingredients.NewWater(f.Name, f.Volume, opts...)
	case "!Spice":
		return ingredients.NewSpice(f.Name, f.Quantity, opts...)
	case "!Other":
		return ingredients.NewOther(f.Name, f.Quantity, opts...)
	case "!Priming":
		return ingredients.NewPriming(f.Name, f.Quantity, opts...)
	default:
		return decodeCulture(node, f, opts)
	}
}

// ppgOf splits the ppg field into a catalog key or a direct value.
func ppgOf(node *yaml.Node, f fields) (string, int, error) {
	switch v := f.PPG.(type) {
	case string:
		return v, 0, nil
	case int:
		return "", v, nil
	case float64:
		if v == math.Trunc(v) {
			return "", int(v), nil
		}
		return "", 0, parseError(node, "ppg must be a whole number, got %g", v)
	case nil:
		return "", 0, parseError(node, "%s needs a ppg", node.Tag)
	default:
		return "", 0, parseError(node, "ppg must be a catalog key or a number, got %v", v)
	}
}

func decodeFermentable(node *yaml.Node, f fields, opts []ingredients.Option) (ingredients.Ingredient, error) {
	key, ppg, err := ppgOf(node, f)
	if err != nil {
		return nil, err
	}

	var fe *ingredients.Fermentable
	switch {
	case key != "" && node.Tag == "!Grain":
		fe, err = ingredients.NewGrain(key, f.Weight, append(opts, ingredients.Named(f.Name))...)
	case key != "" && node.Tag == "!Sugar":
		fe, err = ingredients.NewSugar(key, f.Weight, append(opts, ingredients.Named(f.Name))...)
	case key != "":
		fe, err = ingredients.NewFermentable(key, f.Weight, append(opts, ingredients.Named(f.Name))...)
	case node.Tag == "!Sugar":
		fe, err = ingredients.CustomFermentable(f.Name, ppg, f.Weight,
			append([]ingredients.Option{ingredients.At(timing.Boil(0))}, opts...)...)
		if fe != nil {
			fe.FullyFermentable = true
		}
	default:
		fe, err = ingredients.CustomFermentable(f.Name, ppg, f.Weight, opts...)
		if fe != nil {
			fe.Grain = node.Tag == "!Grain"
		}
	}
	if err != nil {
		return nil, err
	}

	if f.Grain != nil {
		fe.Grain = *f.Grain
	}
	if f.Fermentable != nil {
		fe.FullyFermentable = *f.Fermentable
	}
	return fe, nil
}

func decodeCulture(node *yaml.Node, f fields, opts []ingredients.Option) (ingredients.Ingredient, error) {
	var (
		c   *ingredients.Culture
		err error
	)
	switch {
	case f.Culture != "":
		c, err = ingredients.NewCulture(f.Culture, append(opts, ingredients.Named(f.Name))...)
	case len(f.Attenuation) == 2:
		c, err = ingredients.CustomCulture(f.Name, f.Attenuation[0], f.Attenuation[1], opts...)
	default:
		return nil, parseError(node, "!Culture needs a culture key or attenuation: [min, max]")
	}
	if err != nil {
		return nil, err
	}
	if f.Quantity != "" {
		c.Amount = f.Quantity
	}
	return c, nil
}

// encodeIngredient writes the explicit form of item, so that decoding it
// gives back an equal ingredient without consulting the catalog.
func encodeIngredient(item ingredients.Ingredient) (*yaml.Node, error) {
	base := item.Info()
	f := fields{Name: base.Name, Desc: base.Desc, Timing: &timingValue{base.Timing}}

	var tag string
	switch v := item.(type) {
	case *ingredients.Fermentable:
		tag = "!Fermentable"
		f.PPG, f.Weight = v.PPG, v.Weight
		f.Grain, f.Fermentable = &v.Grain, &v.FullyFermentable
	case *ingredients.Unfermentable:
		tag = "!Unfermentable"
		f.PPG, f.Weight = v.PPG, v.Weight
	case *ingredients.Fruit:
		tag = "!Fruit"
		f.SG, f.Weight, f.Density = v.SG, v.Weight, &v.Density
	case *ingredients.Hop:
		tag = "!Hop"
		f.Alpha, f.Beta, f.Weight, f.Whole = v.Alpha, v.Beta, v.Weight, v.Whole
	case *ingredients.Water:
		tag = "!Water"
		f.Volume = v.Gallons
	case *ingredients.Spice:
		tag, f.Quantity = "!Spice", v.Amount
	case *ingredients.Other:
		tag, f.Quantity = "!Other", v.Amount
	case *ingredients.Priming:
		tag, f.Quantity = "!Priming", v.Amount
	case *ingredients.Culture:
		tag, f.Quantity = "!Culture", v.Amount
		if v.Key != "" {
			f.Culture = v.Key
		} else {
			f.Attenuation = []float64{v.MinAttenuation, v.MaxAttenuation}
		}
	default:
		return nil, errors.Newf(errors.ErrRecipeWrite, "cannot write %T", item)
	}

	node := &yaml.Node{}
	if err := node.Encode(f); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecipeWrite, "cannot write %s", base.Name)
	}
	node.Tag = tag
	node.Style = yaml.FlowStyle
	return node, nil
}

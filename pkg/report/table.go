// Package report turns evaluations, ingredient lists, catalog entries and
// brew logs into captioned tables and renders them in the output format the
// caller asks for.
package report

import (
	"fmt"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/catalog"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/recipe"
	"github.com/arthur-debert/wort/pkg/wort"
)

// Table is a captioned grid of preformatted cells. Footer lines summarize
// the table.
type Table struct {
	Type    string     `json:"type" yaml:"type"`
	Caption string     `json:"caption" yaml:"caption"`
	Headers []string   `json:"headings" yaml:"headings"`
	Footer  []string   `json:"footer,omitempty" yaml:"footer,omitempty"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

func (t *Table) add(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func percent(f float64) string { return fmt.Sprintf("%.1f%%", f*100) }
func sg(g float64) string      { return fmt.Sprintf("%.3f", g) }
func gal(v float64) string     { return fmt.Sprintf("%.2f gal", v) }

// FromEvaluation lays an evaluation out in brewing order: extract, mash
// infusion, hops, then the finished beer.
func FromEvaluation(name string, ev brew.Evaluation) []Table {
	return []Table{
		Extract(name, ev.Mash),
		Infusion(name, ev.Mash.Infusion),
		Hops(name, ev.Boil),
		Beer(name, ev),
	}
}

// Extract lists every gravity contributor and its share of the recipe.
func Extract(name string, mash brew.MashResult) Table {
	t := Table{
		Type:    "extract",
		Caption: caption(name, "Fermentables"),
		Headers: []string{"Name", "Timing", "Weight", "Weight %", "PPG", "Extract", "Extract %"},
		Footer: []string{
			"Kettle volume: " + gal(mash.Wort.Volume),
			"Efficiency: " + percent(mash.Efficiency),
			"Pre-boil SG: " + sg(mash.Wort.Gravity),
		},
	}
	for _, row := range mash.Rows {
		info := row.Ingredient.Info()
		t.add(
			info.Name,
			info.Timing.String(),
			fmt.Sprintf("%.2f lb", row.Weight),
			percent(row.WeightFraction),
			fmt.Sprint(row.PPG),
			fmt.Sprintf("%.1f", row.Extract),
			percent(row.ExtractFraction),
		)
	}
	return t
}

// Infusion is the mash water schedule.
func Infusion(name string, in brew.Infusion) Table {
	t := Table{
		Type:    "infusion",
		Caption: caption(name, "Mash infusions"),
		Headers: []string{"Mash temp", "Water temp", "Volume"},
		Footer: []string{
			"Mash water: " + gal(in.MashWater),
			fmt.Sprintf("Mash ratio: %.2f qt/lb", in.Ratio()),
			"Sparge: " + gal(in.Sparge),
			"Collected: " + gal(in.Collected),
		},
	}
	for _, step := range in.Steps {
		t.add(
			fmt.Sprintf("%.0f °F", step.MashTemp),
			fmt.Sprintf("%.1f °F", step.WaterTemp),
			gal(step.Volume),
		)
	}
	return t
}

// Hops lists each hop addition's contribution to bitterness.
func Hops(name string, boil brew.BoilResult) Table {
	t := Table{
		Type:    "hops",
		Caption: caption(name, "Hops"),
		Headers: []string{"Name", "Form", "Alpha", "Weight", "Timing", "Utilization", "IBU"},
		Footer: []string{
			fmt.Sprintf("Pre-boil: %s at %s", gal(boil.PreBoil.Volume), sg(boil.PreBoil.Gravity)),
			fmt.Sprintf("Post-boil: %s at %s", gal(boil.PostBoil.Volume), sg(boil.PostBoil.Gravity)),
			fmt.Sprintf("Total: %.1f IBU", boil.PostBoil.Bitterness),
		},
	}
	if boil.HopStand {
		t.Footer = append(t.Footer, "Hop stand")
	}
	for _, row := range boil.Hops {
		t.add(hopCells(row)...)
	}
	return t
}

func hopCells(row wort.HopRow) []string {
	return []string{
		row.Hop.Name,
		row.Hop.Form(),
		fmt.Sprintf("%.1f%%", row.Hop.Alpha),
		row.Hop.Quantity(),
		row.Hop.Timing.String(),
		fmt.Sprintf("%.1f%%", row.Utilization),
		fmt.Sprintf("%.1f", row.IBU),
	}
}

// Beer summarizes the finished beer.
func Beer(name string, ev brew.Evaluation) Table {
	b := ev.Beer()
	t := Table{
		Type:    "beer",
		Caption: caption(name, "Beer"),
		Headers: []string{"Property", "Value"},
	}
	t.add("Original gravity", sg(b.SG))
	t.add("Final gravity", sg(b.FG))
	t.add("Bitterness", fmt.Sprintf("%.1f IBU", b.Bitterness))
	t.add("Apparent attenuation", fmt.Sprintf("%.1f%%", b.ApparentAttenuation()))
	t.add("Real attenuation", fmt.Sprintf("%.1f%%", b.RealAttenuation()))
	t.add("ABV", fmt.Sprintf("%.1f%%", b.ABV()))
	t.add("Calories", fmt.Sprintf("%.0f", b.Calories()))
	t.add("Carbohydrates", fmt.Sprintf("%.1f g", b.Carbohydrates()))

	est := ev.Ferment.Estimate
	if est.Culture != nil {
		t.Footer = append(t.Footer, "Culture: "+est.Culture.Name)
	}
	t.Footer = append(t.Footer,
		fmt.Sprintf("Attenuation: %.1f%%", est.Attenuation),
		"Volume: "+gal(ev.Ferment.FinalVolume),
	)
	return t
}

// Ingredients is the shopping list in recipe order.
func Ingredients(name string, c *ingredients.Ingredients) Table {
	t := Table{
		Type:    "ingredients",
		Caption: caption(name, "Ingredients"),
		Headers: []string{"Item", "Kind", "Quantity", "Timing"},
	}
	for _, item := range c.All() {
		info := item.Info()
		t.add(info.Name, item.Kind().String(), item.Quantity(), info.Timing.String())
	}
	return t
}

// CatalogFermentables lists fermentable catalog entries.
func CatalogFermentables(entries []catalog.FermentableEntry) Table {
	t := Table{
		Type:    "catalog",
		Caption: "Fermentables",
		Headers: []string{"Key", "Name", "PPG", "Grain", "Fully fermentable"},
	}
	for _, e := range entries {
		t.add(e.Key, e.Name, fmt.Sprint(e.PPG), yesNo(e.Grain), yesNo(e.FullyFermentable))
	}
	return t
}

// CatalogCultures lists culture bank entries.
func CatalogCultures(entries []catalog.CultureEntry) Table {
	t := Table{
		Type:    "catalog",
		Caption: "Cultures",
		Headers: []string{"Key", "Name", "Attenuation"},
	}
	for _, e := range entries {
		t.add(e.Key, e.Name, fmt.Sprintf("%.0f-%.0f%%", e.Min, e.Max))
	}
	return t
}

// Log compares the recorded gravity readings with the predicted original
// gravity og.
func Log(name string, entries []recipe.Measurement, og float64) (Table, error) {
	t := Table{
		Type:    "log",
		Caption: caption(name, "Brew log"),
		Headers: []string{"Date", "Instrument", "Reading", "Gravity", "Attenuation", "ABV", "Note"},
		Footer:  []string{"Predicted OG: " + sg(og)},
	}
	for _, m := range entries {
		g, err := m.Corrected(og)
		if err != nil {
			return Table{}, err
		}
		att, _ := m.ApparentAttenuation(og)
		abv, _ := m.ABV(og)
		t.add(
			m.Date,
			m.Instrument.String(),
			fmt.Sprintf("%.3f", m.Gravity),
			sg(g),
			fmt.Sprintf("%.1f%%", att),
			fmt.Sprintf("%.1f%%", abv),
			m.Note,
		)
	}
	return t, nil
}

func caption(name, what string) string {
	if name == "" {
		return what
	}
	return name + ": " + what
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

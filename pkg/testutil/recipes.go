package testutil

import (
	"fmt"
	"strings"
)

// Ale is a single malt, single hop recipe document: pounds of American
// 2-row, 1 oz of 7% Cascade boiled 60 minutes and US-05, for 5.5 gallons.
// Extra lines are appended to the document as is.
func Ale(name string, pounds float64, extra ...string) string {
	doc := fmt.Sprintf(`name: %s
volume: 5.5
ingredients:
  - !Grain {ppg: AmericanTwoRow, weight: %g}
  - !Hop {name: Cascade, alpha: 7.0, weight: 1.0, timing: !Boil 60}
  - !Culture {culture: AmericanAleUS05}
`, name, pounds)
	if len(extra) > 0 {
		doc += strings.Join(extra, "\n") + "\n"
	}
	return doc
}

// Parameters renders a recipe parameters block.
func Parameters(kv ...string) string {
	var b strings.Builder
	b.WriteString("parameters:")
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, "\n  %s: %s", kv[i], kv[i+1])
	}
	return b.String()
}

package ingredients

import (
	"fmt"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
)

// WholeLeafFactor scales utilization of whole-leaf hops relative to pellets.
const WholeLeafFactor = 0.85

// Hop is a hop addition.
type Hop struct {
	Base
	// Alpha acids, weight percent
	Alpha float64
	// Weight in ounces
	Weight float64
	// Whole is true for whole leaf, false for pellets.
	Whole bool
	// Beta acids, weight percent; informational only.
	Beta *float64
}

// NewHop creates a pellet hop addition with unspecified timing unless At is
// given.
func NewHop(name string, alpha, weight float64, opts ...Option) (*Hop, error) {
	h := &Hop{
		Base:   newBase(name, timing.Unspecified(), opts),
		Alpha:  alpha,
		Weight: weight,
	}
	return h, h.Validate()
}

func (h *Hop) Kind() Kind       { return KindHop }
func (h *Hop) Quantity() string { return fmt.Sprintf("%.2f oz", h.Weight) }

// Form is "Whole leaf" or "Pellets".
func (h *Hop) Form() string {
	if h.Whole {
		return "Whole leaf"
	}
	return "Pellets"
}

func (h *Hop) Validate() error {
	if err := h.Base.validate(KindHop); err != nil {
		return err
	}
	switch {
	case h.Weight < 0:
		return negative(KindHop, h.Name, "weight", h.Weight)
	case h.Alpha < 0 || h.Alpha > 100:
		return errors.Newf(errors.ErrInvalidIngredient, "hop %q: alpha must be a percentage, got %g", h.Name, h.Alpha).
			WithDetail("field", "alpha")
	case h.Beta != nil && (*h.Beta < 0 || *h.Beta > 100):
		return errors.Newf(errors.ErrInvalidIngredient, "hop %q: beta must be a percentage, got %g", h.Name, *h.Beta).
			WithDetail("field", "beta")
	}
	return nil
}

func (h *Hop) String() string {
	beta := ""
	if h.Beta != nil {
		beta = fmt.Sprintf(", %g%% β", *h.Beta)
	}
	return fmt.Sprintf("%s (%g%% α%s), %s at %s", h.Name, h.Alpha, beta, h.Quantity(), h.Timing)
}

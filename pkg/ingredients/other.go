package ingredients

import (
	"fmt"

	"github.com/arthur-debert/wort/pkg/catalog"
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
)

// Spice is an informational addition such as cinnamon or orange zest.
type Spice struct {
	Base
	Amount string
}

// Other is any informational addition without a better kind.
type Other struct {
	Base
	Amount string
}

// Priming is the sugar used to carbonate at packaging.
type Priming struct {
	Base
	Amount string
}

func NewSpice(name, amount string, opts ...Option) (*Spice, error) {
	s := &Spice{Base: newBase(name, timing.Unspecified(), opts), Amount: amount}
	return s, s.Validate()
}

func NewOther(name, amount string, opts ...Option) (*Other, error) {
	o := &Other{Base: newBase(name, timing.Unspecified(), opts), Amount: amount}
	return o, o.Validate()
}

func NewPriming(name, amount string, opts ...Option) (*Priming, error) {
	p := &Priming{Base: newBase(name, timing.Packaging(), opts), Amount: amount}
	return p, p.Validate()
}

func (s *Spice) Kind() Kind       { return KindSpice }
func (s *Spice) Quantity() string { return s.Amount }
func (s *Spice) Validate() error  { return s.Base.validate(KindSpice) }
func (s *Spice) String() string   { return describe(s.Name, s.Amount, s.Timing) }

func (o *Other) Kind() Kind       { return KindOther }
func (o *Other) Quantity() string { return o.Amount }
func (o *Other) Validate() error  { return o.Base.validate(KindOther) }
func (o *Other) String() string   { return describe(o.Name, o.Amount, o.Timing) }

func (p *Priming) Kind() Kind       { return KindPriming }
func (p *Priming) Quantity() string { return p.Amount }
func (p *Priming) Validate() error  { return p.Base.validate(KindPriming) }
func (p *Priming) String() string   { return describe(p.Name, p.Amount, p.Timing) }

// Water is brewing water, optionally with a volume that adds to the wort.
type Water struct {
	Base
	// Gallons of water added; zero for a purely descriptive entry.
	Gallons float64
}

func NewWater(name string, gallons float64, opts ...Option) (*Water, error) {
	w := &Water{Base: newBase(name, timing.Unspecified(), opts), Gallons: gallons}
	return w, w.Validate()
}

func (w *Water) Kind() Kind           { return KindWater }
func (w *Water) AddedVolume() float64 { return w.Gallons }

func (w *Water) Quantity() string {
	if w.Gallons == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f gal", w.Gallons)
}

func (w *Water) Validate() error {
	if err := w.Base.validate(KindWater); err != nil {
		return err
	}
	if w.Gallons < 0 {
		return negative(KindWater, w.Name, "volume", w.Gallons)
	}
	return nil
}

func (w *Water) String() string { return describe(w.Name, w.Quantity(), w.Timing) }

// Culture is yeast or bacteria pitched for fermentation.
type Culture struct {
	Base
	Amount string
	// Key is the culture bank key, empty for custom cultures.
	Key string
	// MinAttenuation and MaxAttenuation are apparent attenuation percent.
	MinAttenuation float64
	MaxAttenuation float64
}

// NewCulture pitches a culture bank entry into the primary.
func NewCulture(key string, opts ...Option) (*Culture, error) {
	entry, err := catalog.Culture(key)
	if err != nil {
		return nil, err
	}
	c := &Culture{
		Base:           newBase(entry.Name, timing.Primary(), opts),
		Amount:         "1",
		Key:            entry.Key,
		MinAttenuation: entry.Min,
		MaxAttenuation: entry.Max,
	}
	return c, c.Validate()
}

// CustomCulture bypasses the culture bank.
func CustomCulture(name string, minAtt, maxAtt float64, opts ...Option) (*Culture, error) {
	c := &Culture{
		Base:           newBase(name, timing.Primary(), opts),
		Amount:         "1",
		MinAttenuation: minAtt,
		MaxAttenuation: maxAtt,
	}
	return c, c.Validate()
}

// Attenuation is the midpoint of the culture's range.
func (c *Culture) Attenuation() float64 {
	return (c.MinAttenuation + c.MaxAttenuation) / 2
}

func (c *Culture) Kind() Kind       { return KindCulture }
func (c *Culture) Quantity() string { return c.Amount }
func (c *Culture) String() string   { return describe(c.Name, c.Amount, c.Timing) }

func (c *Culture) Validate() error {
	if err := c.Base.validate(KindCulture); err != nil {
		return err
	}
	if c.MinAttenuation < 0 || c.MaxAttenuation > 100 || c.MinAttenuation > c.MaxAttenuation {
		return errors.Newf(errors.ErrInvalidIngredient, "culture %q: attenuation range %g-%g%% is invalid",
			c.Name, c.MinAttenuation, c.MaxAttenuation).
			WithDetail("field", "attenuation")
	}
	return nil
}

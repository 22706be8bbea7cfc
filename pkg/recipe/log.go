package recipe

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/gravity"
)

// Instrument is how a gravity reading was taken.
type Instrument int

const (
	// Direct readings are already corrected specific gravities.
	Direct Instrument = iota
	Hydrometer
	Refractometer
)

var instrumentTags = map[Instrument]string{
	Direct:        "!GravityMeasurement",
	Hydrometer:    "!Hydrometer",
	Refractometer: "!Refractometer",
}

func (i Instrument) String() string {
	switch i {
	case Hydrometer:
		return "Hydrometer"
	case Refractometer:
		return "Refractometer"
	}
	return "Gravity"
}

// Measurement is a brew log entry.
type Measurement struct {
	Instrument Instrument
	// Date as written in the log
	Date string
	// Gravity is the raw reading as SG.
	Gravity float64
	// Temp is the sample temperature, °F; hydrometer readings default to
	// the 60 °F calibration temperature.
	Temp *float64
	Note string
}

type measurementFields struct {
	Date    string   `yaml:"date,omitempty"`
	Gravity float64  `yaml:"gravity"`
	T       *float64 `yaml:"T,omitempty"`
	Note    string   `yaml:"note,omitempty"`
}

// Corrected is the true gravity of the sample. Refractometer readings
// need the original gravity og to account for alcohol.
func (m Measurement) Corrected(og float64) (float64, error) {
	switch m.Instrument {
	case Hydrometer:
		t := 60.0
		if m.Temp != nil {
			t = *m.Temp
		}
		return gravity.HydrometerCorrect(m.Gravity, t)
	case Refractometer:
		return gravity.RefractometerCorrect(og, m.Gravity), nil
	}
	return m.Gravity, nil
}

// ApparentAttenuation from og to this reading, percent.
func (m Measurement) ApparentAttenuation(og float64) (float64, error) {
	g, err := m.Corrected(og)
	if err != nil {
		return 0, err
	}
	return gravity.ApparentAttenuation(og, g), nil
}

// ABV of the beer at this reading, percent.
func (m Measurement) ABV(og float64) (float64, error) {
	g, err := m.Corrected(og)
	if err != nil {
		return 0, err
	}
	return gravity.ABV(og, g), nil
}

func decodeMeasurement(node *yaml.Node) (Measurement, error) {
	m := Measurement{Instrument: -1}
	for inst, tag := range instrumentTags {
		if node.Tag == tag {
			m.Instrument = inst
		}
	}
	if m.Instrument < 0 || node.Kind != yaml.MappingNode {
		return Measurement{}, parseError(node, "expected a tagged gravity reading, got %q", node.Tag).
			WithDetail("valid_keys", []string{"!GravityMeasurement", "!Hydrometer", "!Refractometer"})
	}

	var f measurementFields
	if err := node.Decode(&f); err != nil {
		return Measurement{}, err
	}
	if f.Gravity < 1 {
		return Measurement{}, parseError(node, "gravity must be a specific gravity, got %g", f.Gravity)
	}
	m.Date, m.Gravity, m.Temp, m.Note = f.Date, f.Gravity, f.T, f.Note
	return m, nil
}

func encodeMeasurement(m Measurement) (*yaml.Node, error) {
	node := &yaml.Node{}
	f := measurementFields{Date: m.Date, Gravity: m.Gravity, T: m.Temp, Note: m.Note}
	if err := node.Encode(f); err != nil {
		return nil, errors.Wrap(err, errors.ErrRecipeWrite, "cannot write log entry")
	}
	node.Tag = instrumentTags[m.Instrument]
	node.Style = yaml.FlowStyle
	return node, nil
}

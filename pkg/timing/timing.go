// Package timing models when an ingredient enters the brewing process.
//
// A Timing is a small immutable value: a Stage plus, for Boil, HopStand and
// Secondary, an embedded time. Compare defines the single total order used
// by every time-based query in wort.
package timing

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/wort/pkg/errors"
)

// Stage is the coarse brewing step of a Timing. The numeric value is the
// stage rank used for cross-stage ordering.
type Stage int

const (
	// StageUnspecified ranks below all others and is left out of time queries
	StageUnspecified Stage = iota
	StageMash
	StageVorlauf
	StageSparge
	StageLauter
	StageFirstWort
	StageBoil
	StageHopStand
	StagePrimary
	StageSecondary
	StagePackaging
	StageFinal
)

var stageNames = map[Stage]string{
	StageUnspecified: "Unspecified",
	StageMash:        "Mash",
	StageVorlauf:     "Vorlauf",
	StageSparge:      "Sparge",
	StageLauter:      "Lauter",
	StageFirstWort:   "First wort",
	StageBoil:        "Boil",
	StageHopStand:    "Hop stand",
	StagePrimary:     "Primary",
	StageSecondary:   "Secondary",
	StagePackaging:   "Packaging",
	StageFinal:       "Final",
}

// String returns the display name of the stage
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Tag returns the identifier used for the stage in recipe documents
// (e.g. "FirstWort", "HopStand").
func (s Stage) Tag() string {
	return strings.ReplaceAll(cases(s.String()), " ", "")
}

// cases upper-cases the first letter of every word.
func cases(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Timed reports whether timings of this stage carry an embedded time.
func (s Stage) Timed() bool {
	return s == StageBoil || s == StageHopStand || s == StageSecondary
}

// Stages lists every stage in rank order
func Stages() []Stage {
	return []Stage{
		StageUnspecified, StageMash, StageVorlauf, StageSparge, StageLauter,
		StageFirstWort, StageBoil, StageHopStand, StagePrimary,
		StageSecondary, StagePackaging, StageFinal,
	}
}

// Timing is when an addition happens.
type Timing struct {
	stage   Stage
	time    float64
	hasTime bool
}

func Unspecified() Timing { return Timing{stage: StageUnspecified} }
func Mash() Timing        { return Timing{stage: StageMash} }
func Vorlauf() Timing     { return Timing{stage: StageVorlauf} }
func Sparge() Timing      { return Timing{stage: StageSparge} }
func Lauter() Timing      { return Timing{stage: StageLauter} }
func FirstWort() Timing   { return Timing{stage: StageFirstWort} }
func Primary() Timing     { return Timing{stage: StagePrimary} }
func Packaging() Timing   { return Timing{stage: StagePackaging} }
func Final() Timing       { return Timing{stage: StageFinal} }

// Boil is an addition with minutes left in the boil.
func Boil(minutes float64) Timing {
	return Timing{stage: StageBoil, time: minutes, hasTime: true}
}

// HopStand is a post-boil steep lasting minutes.
func HopStand(minutes float64) Timing {
	return Timing{stage: StageHopStand, time: minutes, hasTime: true}
}

// Secondary is an addition to the secondary with no steeping time.
func Secondary() Timing {
	return Timing{stage: StageSecondary}
}

// SecondaryDays is an addition that steeps days in the secondary.
func SecondaryDays(days float64) Timing {
	return Timing{stage: StageSecondary, time: days, hasTime: true}
}

// New builds a timing for stage. t is required for Boil and HopStand,
// optional for Secondary, and must be nil otherwise.
func New(stage Stage, t *float64) (Timing, error) {
	if _, ok := stageNames[stage]; !ok {
		return Timing{}, errors.Newf(errors.ErrInvalidTiming, "unknown stage %d", int(stage))
	}

	switch {
	case stage.Timed() && t == nil && stage != StageSecondary:
		return Timing{}, errors.Newf(errors.ErrInvalidTiming, "%s timing requires a time", stage).
			WithDetail("stage", stage.Tag())
	case !stage.Timed() && t != nil:
		return Timing{}, errors.Newf(errors.ErrInvalidTiming, "%s timing does not take a time", stage).
			WithDetail("stage", stage.Tag())
	}

	tm := Timing{stage: stage}
	if t != nil {
		tm.time = *t
		tm.hasTime = true
	}
	return tm, tm.Validate()
}

// Parse reads a stage name and an optional time, as written in recipe
// documents: Parse("Boil", "60"), Parse("Mash", ""). Stage names match
// case-insensitively, ignoring spaces, dashes and underscores.
func Parse(name, value string) (Timing, error) {
	stage, err := ParseStage(name)
	if err != nil {
		return Timing{}, err
	}

	value = strings.TrimSpace(value)
	if value == "" || value == "~" || value == "null" {
		return New(stage, nil)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Timing{}, errors.Wrapf(err, errors.ErrInvalidTiming, "malformed %s time %q", stage, value).
			WithDetail("stage", stage.Tag())
	}
	return New(stage, &v)
}

// ParseStage resolves a stage name.
func ParseStage(name string) (Stage, error) {
	key := normalize(name)
	for _, s := range Stages() {
		if normalize(s.String()) == key {
			return s, nil
		}
	}

	valid := make([]string, 0, len(stageNames))
	for _, s := range Stages() {
		valid = append(valid, s.Tag())
	}
	return StageUnspecified, errors.Newf(errors.ErrInvalidTiming, "unknown timing %q", name).
		WithDetail("valid_keys", valid)
}

func normalize(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// Validate checks that embedded times are present and non-negative.
func (t Timing) Validate() error {
	if (t.stage == StageBoil || t.stage == StageHopStand) && !t.hasTime {
		return errors.Newf(errors.ErrInvalidTiming, "%s timing requires a time", t.stage)
	}
	if t.hasTime && t.time < 0 {
		return errors.Newf(errors.ErrInvalidTiming, "%s time must not be negative, got %g", t.stage, t.time).
			WithDetail("stage", t.stage.Tag())
	}
	return nil
}

// Stage returns the coarse stage
func (t Timing) Stage() Stage { return t.stage }

// Time returns the embedded time and whether one is set. Boil and HopStand
// times are minutes, Secondary times are days.
func (t Timing) Time() (float64, bool) { return t.time, t.hasTime }

// Minutes returns the embedded time, or zero when there is none.
func (t Timing) Minutes() float64 { return t.time }

// Is reports whether t belongs to stage s.
func (t Timing) Is(s Stage) bool { return t.stage == s }

// IsSpecified reports whether t takes part in time-ordered queries.
func (t Timing) IsSpecified() bool { return t.stage != StageUnspecified }

// String renders the timing for reports, e.g. "Boil for 60 minutes".
func (t Timing) String() string {
	switch t.stage {
	case StageBoil:
		return fmt.Sprintf("Boil for %s minutes", formatTime(t.time))
	case StageHopStand:
		return fmt.Sprintf("%s minute Hop stand", formatTime(t.time))
	case StageSecondary:
		if !t.hasTime || t.time == 0 {
			return "Secondary"
		}
		return fmt.Sprintf("%s days in the Secondary", formatTime(t.time))
	}
	return t.stage.String()
}

func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Compare orders a and b by when they occur: -1 if a happens first, +1 if
// b does, 0 if they are simultaneous. Stage rank decides across stages.
// Within the boil more remaining minutes is earlier; hop stands and the
// secondary order by ascending time.
func Compare(a, b Timing) int {
	if c := cmp.Compare(a.stage, b.stage); c != 0 {
		return c
	}

	switch a.stage {
	case StageBoil:
		return cmp.Compare(b.time, a.time)
	case StageHopStand, StageSecondary:
		return cmp.Compare(a.time, b.time)
	}
	return 0
}

// Before reports whether t happens strictly before u
func (t Timing) Before(u Timing) bool { return Compare(t, u) < 0 }

// AtOrBefore reports whether t happens at the same time as u or earlier
func (t Timing) AtOrBefore(u Timing) bool { return Compare(t, u) <= 0 }

// After reports whether t happens strictly after u
func (t Timing) After(u Timing) bool { return Compare(t, u) > 0 }

// Equal reports whether t and u are the same point in the process
func (t Timing) Equal(u Timing) bool { return Compare(t, u) == 0 }

package timing_test

import (
	"testing"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one representative per stage, in rank order
func representatives() []timing.Timing {
	return []timing.Timing{
		timing.Unspecified(),
		timing.Mash(),
		timing.Vorlauf(),
		timing.Sparge(),
		timing.Lauter(),
		timing.FirstWort(),
		timing.Boil(0),
		timing.HopStand(30),
		timing.Primary(),
		timing.SecondaryDays(14),
		timing.Packaging(),
		timing.Final(),
	}
}

func TestCompare_StageRankWins(t *testing.T) {
	reps := representatives()
	// embedded times must never override stage rank
	reps = append(reps, timing.Boil(90), timing.HopStand(0), timing.Secondary())

	for _, a := range reps {
		for _, b := range reps {
			if a.Stage() < b.Stage() {
				assert.Equal(t, -1, timing.Compare(a, b), "%s vs %s", a, b)
				assert.Equal(t, 1, timing.Compare(b, a), "%s vs %s", b, a)
			}
		}
	}
}

func TestCompare_WithinStage(t *testing.T) {
	tests := []struct {
		name string
		a, b timing.Timing
		want int
	}{
		{"boil_more_minutes_is_earlier", timing.Boil(60), timing.Boil(30), -1},
		{"boil_fewer_minutes_is_later", timing.Boil(10), timing.Boil(60), 1},
		{"boil_equal_minutes", timing.Boil(15), timing.Boil(15), 0},
		{"hop_stand_ascending", timing.HopStand(5), timing.HopStand(20), -1},
		{"secondary_ascending", timing.SecondaryDays(3), timing.SecondaryDays(7), -1},
		{"secondary_without_days_first", timing.Secondary(), timing.SecondaryDays(1), -1},
		{"mash_equals_mash", timing.Mash(), timing.Mash(), 0},
		{"final_equals_final", timing.Final(), timing.Final(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timing.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, timing.Compare(tt.b, tt.a))
		})
	}
}

func TestTiming_Predicates(t *testing.T) {
	assert.True(t, timing.Mash().Before(timing.Lauter()))
	assert.True(t, timing.Lauter().AtOrBefore(timing.Lauter()))
	assert.True(t, timing.Sparge().AtOrBefore(timing.Lauter()))
	assert.False(t, timing.Boil(0).AtOrBefore(timing.Lauter()))
	assert.True(t, timing.Primary().After(timing.Boil(0)))
	assert.True(t, timing.Boil(60).Equal(timing.Boil(60)))
	assert.False(t, timing.Boil(60).Equal(timing.Boil(59)))
	assert.False(t, timing.Unspecified().IsSpecified())
}

func TestTiming_String(t *testing.T) {
	tests := []struct {
		timing timing.Timing
		want   string
	}{
		{timing.Mash(), "Mash"},
		{timing.FirstWort(), "First wort"},
		{timing.Boil(60), "Boil for 60 minutes"},
		{timing.Boil(7.5), "Boil for 7.5 minutes"},
		{timing.HopStand(5), "5 minute Hop stand"},
		{timing.Secondary(), "Secondary"},
		{timing.SecondaryDays(0), "Secondary"},
		{timing.SecondaryDays(3), "3 days in the Secondary"},
		{timing.Final(), "Final"},
		{timing.Unspecified(), "Unspecified"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.timing.String())
		})
	}
}

func TestStage_Tag(t *testing.T) {
	assert.Equal(t, "FirstWort", timing.StageFirstWort.Tag())
	assert.Equal(t, "HopStand", timing.StageHopStand.Tag())
	assert.Equal(t, "Boil", timing.StageBoil.Tag())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		stage   string
		value   string
		want    timing.Timing
		wantErr bool
	}{
		{"boil_with_minutes", "Boil", "60", timing.Boil(60), false},
		{"mash_without_time", "mash", "", timing.Mash(), false},
		{"first_wort_tag", "FirstWort", "", timing.FirstWort(), false},
		{"hop_stand_spaced", "hop stand", "10", timing.HopStand(10), false},
		{"secondary_optional_days", "Secondary", "", timing.Secondary(), false},
		{"secondary_days", "Secondary", "5", timing.SecondaryDays(5), false},
		{"boil_missing_minutes", "Boil", "", timing.Timing{}, true},
		{"boil_malformed_minutes", "Boil", "sixty", timing.Timing{}, true},
		{"boil_negative_minutes", "Boil", "-5", timing.Timing{}, true},
		{"mash_with_time", "Mash", "10", timing.Timing{}, true},
		{"unknown_stage", "Whirlpool", "", timing.Timing{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timing.Parse(tt.stage, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTiming))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseStage_ListsValidKeys(t *testing.T) {
	_, err := timing.ParseStage("whirlpool")
	require.Error(t, err)

	valid, ok := errors.GetErrorDetails(err)["valid_keys"].([]string)
	require.True(t, ok)
	assert.Contains(t, valid, "HopStand")
	assert.Len(t, valid, len(timing.Stages()))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, timing.Boil(0).Validate())
	assert.Error(t, timing.Boil(-1).Validate())
	assert.Error(t, timing.SecondaryDays(-2).Validate())
	assert.NoError(t, timing.Secondary().Validate())
}

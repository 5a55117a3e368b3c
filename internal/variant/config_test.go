package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

const minimalDoc = `
board:
  initial_setup:
    white: {24: 15}
    black: {1: 15}
movement:
  direction: {white: -1, black: 1}
`

func TestParseAppliesDefaults(t *testing.T) {
	rc, err := Parse("minimal", []byte(minimalDoc))
	require.NoError(t, err)

	assert.Equal(t, "minimal", rc.Name)
	assert.Equal(t, 24, rc.Points)
	assert.Equal(t, 4, rc.DoublesUses)
	assert.True(t, rc.Hitting.CanHit)
	assert.False(t, rc.Hitting.PinInstead)
	assert.True(t, rc.Combined.Normal)
	assert.False(t, rc.Combined.Enter)
	assert.False(t, rc.Combined.BearOff)
	assert.True(t, rc.BearingOff.Enabled)
	assert.True(t, rc.BearingOff.AllInOuterBoard)
	assert.True(t, rc.ForcedMoves.MustUseAllDice)
	assert.True(t, rc.ForcedMoves.MustUseHigherIfOnlyOne)
}

func TestParseNameFieldWinsOverFilename(t *testing.T) {
	doc := "name: custom\n" + minimalDoc
	rc, err := Parse("file_name", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "custom", rc.Name)
}

func TestParseRejectsInvalidConfigs(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "missing movement section",
			doc:   "board:\n  initial_setup:\n    white: {24: 15}\n    black: {1: 15}\n",
			field: "movement",
		},
		{
			name:  "missing board section",
			doc:   "movement:\n  direction: {white: -1, black: 1}\n",
			field: "board",
		},
		{
			name:  "direction missing a color",
			doc:   "board:\n  initial_setup:\n    white: {24: 15}\n    black: {1: 15}\nmovement:\n  direction: {white: -1}\n",
			field: "movement.direction",
		},
		{
			name:  "direction out of range",
			doc:   "board:\n  initial_setup:\n    white: {24: 15}\n    black: {1: 15}\nmovement:\n  direction: {white: -2, black: 1}\n",
			field: "movement.direction",
		},
		{
			name:  "doubles_uses below two",
			doc:   minimalDoc + "doubles_uses: 1\n",
			field: "doubles_uses",
		},
		{
			name:  "hit and pin both enabled",
			doc:   minimalDoc + "hitting:\n  can_hit: true\n  pin_instead: true\n",
			field: "hitting",
		},
		{
			name:  "setup point off the board",
			doc:   "board:\n  initial_setup:\n    white: {25: 15}\n    black: {1: 15}\nmovement:\n  direction: {white: -1, black: 1}\n",
			field: "board.initial_setup",
		},
		{
			name:  "negative checker count",
			doc:   "board:\n  initial_setup:\n    white: {24: -1}\n    black: {1: 15}\nmovement:\n  direction: {white: -1, black: 1}\n",
			field: "board.initial_setup",
		},
		{
			name:  "no checkers for a color",
			doc:   "board:\n  initial_setup:\n    black: {1: 15}\nmovement:\n  direction: {white: -1, black: 1}\n",
			field: "board.initial_setup",
		},
		{
			name:  "negative bar count",
			doc:   "board:\n  initial_setup:\n    white: {24: 15}\n    black: {1: 15}\n  bar: {white: -3}\nmovement:\n  direction: {white: -1, black: 1}\n",
			field: "board.bar",
		},
		{
			name:  "board too small",
			doc:   "board:\n  points: 6\n  initial_setup:\n    white: {6: 15}\n    black: {1: 15}\nmovement:\n  direction: {white: -1, black: 1}\n",
			field: "board.points",
		},
		{
			name:  "not yaml at all",
			doc:   "{{{{",
			field: "document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte(tt.doc))
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.NotEmpty(t, cfgErr.Reason)
		})
	}
}

func TestParseBarOnlyLayout(t *testing.T) {
	doc := `
board:
  initial_setup: {}
  bar: {white: 15, black: 15}
movement:
  direction: {white: -1, black: 1}
`
	rc, err := Parse("bar_start", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 15, rc.TotalCheckers(model.ColorWhite))
	assert.Empty(t, rc.Layout.Points[model.ColorWhite])
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Variant: "standard", Field: "doubles_uses", Reason: "must be at least 2, got 1"}
	assert.Equal(t, `variant "standard": invalid doubles_uses: must be at least 2, got 1`, err.Error())
}

func TestHomeRangeFollowsDirection(t *testing.T) {
	rc, err := Parse("minimal", []byte(minimalDoc))
	require.NoError(t, err)

	lo, hi := rc.HomeRange(model.ColorWhite)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 6, hi)

	lo, hi = rc.HomeRange(model.ColorBlack)
	assert.Equal(t, 19, lo)
	assert.Equal(t, 24, hi)
}

func TestEntryPointMirrorsDirection(t *testing.T) {
	rc, err := Parse("minimal", []byte(minimalDoc))
	require.NoError(t, err)

	assert.Equal(t, 24, rc.EntryPoint(model.ColorWhite, 1))
	assert.Equal(t, 19, rc.EntryPoint(model.ColorWhite, 6))
	assert.Equal(t, 1, rc.EntryPoint(model.ColorBlack, 1))
	assert.Equal(t, 6, rc.EntryPoint(model.ColorBlack, 6))
}

func TestBearingDistance(t *testing.T) {
	rc, err := Parse("minimal", []byte(minimalDoc))
	require.NoError(t, err)

	assert.Equal(t, 3, rc.BearingDistance(model.ColorWhite, 3))
	assert.Equal(t, 3, rc.BearingDistance(model.ColorBlack, 22))
}

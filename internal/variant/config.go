package variant

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

// ConfigError reports a malformed or missing field in a variant file. It is
// fatal at load time: a variant that fails validation is never registered.
type ConfigError struct {
	Variant string
	Field   string
	Reason  string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("variant %q: invalid %s: %s", e.Variant, e.Field, e.Reason)
}

// Defaults applied when an optional section is absent
const (
	defaultPoints      = 24
	defaultDoublesUses = 4

	// minPoints keeps room for a home quadrant at each end of the track.
	minPoints = 12
)

// fileConfig mirrors the on-disk variant schema. Optional sections are
// pointers so absence can be told apart from an explicit zero value.
type fileConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	Board    *boardSection    `yaml:"board"`
	Movement *movementSection `yaml:"movement"`

	Hitting       *hittingSection    `yaml:"hitting"`
	BearingOff    *bearingOffSection `yaml:"bearing_off"`
	DoublesUses   *int               `yaml:"doubles_uses"`
	CombinedMoves *combinedSection   `yaml:"combined_moves"`
	ForcedMoves   *forcedSection     `yaml:"forced_moves"`
}

type boardSection struct {
	Points       int                    `yaml:"points"`
	InitialSetup map[string]map[int]int `yaml:"initial_setup"`
	Bar          map[string]int         `yaml:"bar"`
}

type movementSection struct {
	Direction map[string]int `yaml:"direction"`
}

type hittingSection struct {
	CanHit     bool `yaml:"can_hit"`
	PinInstead bool `yaml:"pin_instead"`
}

type bearingOffSection struct {
	Enabled         bool `yaml:"enabled"`
	AllInOuterBoard bool `yaml:"all_in_outer_board"`
}

type combinedSection struct {
	Normal  bool `yaml:"normal"`
	Enter   bool `yaml:"enter"`
	BearOff bool `yaml:"bear_off"`
}

type forcedSection struct {
	MustUseAllDice         bool `yaml:"must_use_all_dice"`
	MustUseHigherIfOnlyOne bool `yaml:"must_use_higher_if_only_one"`
}

// Parse reads one variant document and returns a validated RuleConfig.
// The name argument is a fallback when the document carries no name field.
func Parse(name string, data []byte) (*model.RuleConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &ConfigError{Variant: name, Field: "document", Reason: err.Error()}
	}

	if fc.Name != "" {
		name = fc.Name
	}
	if name == "" {
		return nil, &ConfigError{Variant: name, Field: "name", Reason: "missing"}
	}

	rc := &model.RuleConfig{
		Name:        name,
		Description: fc.Description,
		Points:      defaultPoints,
		DoublesUses: defaultDoublesUses,
		Hitting:     model.HittingRules{CanHit: true},
		Combined:    model.CombinedRules{Normal: true},
		BearingOff:  model.BearingOffRules{Enabled: true, AllInOuterBoard: true},
		ForcedMoves: model.ForcedMoveRules{MustUseAllDice: true, MustUseHigherIfOnlyOne: true},
	}

	if err := applyMovement(rc, fc.Movement); err != nil {
		return nil, err
	}
	if err := applyBoard(rc, fc.Board); err != nil {
		return nil, err
	}

	if fc.Hitting != nil {
		rc.Hitting = model.HittingRules{CanHit: fc.Hitting.CanHit, PinInstead: fc.Hitting.PinInstead}
	}
	if rc.Hitting.CanHit && rc.Hitting.PinInstead {
		return nil, &ConfigError{Variant: name, Field: "hitting", Reason: "can_hit and pin_instead cannot both be true"}
	}

	if fc.BearingOff != nil {
		rc.BearingOff = model.BearingOffRules{
			Enabled:         fc.BearingOff.Enabled,
			AllInOuterBoard: fc.BearingOff.AllInOuterBoard,
		}
	}

	if fc.DoublesUses != nil {
		rc.DoublesUses = *fc.DoublesUses
	}
	if rc.DoublesUses < 2 {
		return nil, &ConfigError{Variant: name, Field: "doubles_uses", Reason: fmt.Sprintf("must be at least 2, got %d", rc.DoublesUses)}
	}

	if fc.CombinedMoves != nil {
		rc.Combined = model.CombinedRules{
			Normal:  fc.CombinedMoves.Normal,
			Enter:   fc.CombinedMoves.Enter,
			BearOff: fc.CombinedMoves.BearOff,
		}
	}

	if fc.ForcedMoves != nil {
		rc.ForcedMoves = model.ForcedMoveRules{
			MustUseAllDice:         fc.ForcedMoves.MustUseAllDice,
			MustUseHigherIfOnlyOne: fc.ForcedMoves.MustUseHigherIfOnlyOne,
		}
	}

	return rc, nil
}

func applyMovement(rc *model.RuleConfig, section *movementSection) error {
	if section == nil {
		return &ConfigError{Variant: rc.Name, Field: "movement", Reason: "section is required"}
	}

	rc.Direction = make(map[model.Color]int, 2)
	for _, c := range model.Colors() {
		dir, ok := section.Direction[string(c)]
		if !ok {
			return &ConfigError{Variant: rc.Name, Field: "movement.direction", Reason: fmt.Sprintf("missing direction for %s", c)}
		}
		if dir != 1 && dir != -1 {
			return &ConfigError{Variant: rc.Name, Field: "movement.direction", Reason: fmt.Sprintf("direction for %s must be 1 or -1, got %d", c, dir)}
		}
		rc.Direction[c] = dir
	}
	return nil
}

func applyBoard(rc *model.RuleConfig, section *boardSection) error {
	if section == nil {
		return &ConfigError{Variant: rc.Name, Field: "board", Reason: "section is required"}
	}

	if section.Points != 0 {
		rc.Points = section.Points
	}
	if rc.Points < minPoints {
		return &ConfigError{Variant: rc.Name, Field: "board.points", Reason: fmt.Sprintf("must be at least %d, got %d", minPoints, rc.Points)}
	}

	rc.Layout = model.StartingLayout{
		Points: make(map[model.Color]map[int]int, 2),
		Bar:    make(map[model.Color]int, 2),
	}

	for _, c := range model.Colors() {
		rc.Layout.Points[c] = make(map[int]int)
		for point, count := range section.InitialSetup[string(c)] {
			if point < 1 || point > rc.Points {
				return &ConfigError{Variant: rc.Name, Field: "board.initial_setup", Reason: fmt.Sprintf("point %d out of range for %s", point, c)}
			}
			if count < 0 {
				return &ConfigError{Variant: rc.Name, Field: "board.initial_setup", Reason: fmt.Sprintf("negative count on point %d for %s", point, c)}
			}
			if count > 0 {
				rc.Layout.Points[c][point] = count
			}
		}

		onBar := section.Bar[string(c)]
		if onBar < 0 {
			return &ConfigError{Variant: rc.Name, Field: "board.bar", Reason: fmt.Sprintf("negative bar count for %s", c)}
		}
		rc.Layout.Bar[c] = onBar

		if rc.TotalCheckers(c) == 0 {
			return &ConfigError{Variant: rc.Name, Field: "board.initial_setup", Reason: fmt.Sprintf("no checkers configured for %s", c)}
		}
	}

	return nil
}

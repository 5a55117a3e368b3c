package variant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/testutil"
)

type RegistrySuite struct {
	suite.Suite
	registry *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	registry, err := NewRegistry("", testutil.NopLogger())
	s.Require().NoError(err)
	s.registry = registry
}

func (s *RegistrySuite) TestBuiltinVariantsLoad() {
	names := s.registry.Names()
	s.GreaterOrEqual(len(names), 15, "should ship at least fifteen variants")

	for _, want := range []string{"standard", "plakoto", "fevga", "narde", "nackgammon", "acey_deucey"} {
		s.Contains(names, want)
	}
}

func (s *RegistrySuite) TestGetUnknownVariant() {
	_, err := s.registry.Get("chess")
	s.ErrorIs(err, model.ErrVariantNotFound)
}

func (s *RegistrySuite) TestStandardRules() {
	rc, err := s.registry.Get("standard")
	s.Require().NoError(err)

	s.Equal(24, rc.Points)
	s.Equal(-1, rc.Direction[model.ColorWhite])
	s.Equal(1, rc.Direction[model.ColorBlack])
	s.Equal(4, rc.DoublesUses)
	s.True(rc.Hitting.CanHit)
	s.False(rc.Hitting.PinInstead)
	s.True(rc.Combined.Normal)
	s.False(rc.Combined.Enter)
	s.True(rc.BearingOff.Enabled)
	s.True(rc.BearingOff.AllInOuterBoard)
	s.True(rc.ForcedMoves.MustUseAllDice)

	s.Equal(15, rc.TotalCheckers(model.ColorWhite))
	s.Equal(15, rc.TotalCheckers(model.ColorBlack))
}

func (s *RegistrySuite) TestPlakotoPinsInsteadOfHitting() {
	rc, err := s.registry.Get("plakoto")
	s.Require().NoError(err)

	s.False(rc.Hitting.CanHit)
	s.True(rc.Hitting.PinInstead)
	s.Equal(15, rc.Layout.Points[model.ColorWhite][24])
	s.Equal(15, rc.Layout.Points[model.ColorBlack][1])
}

func (s *RegistrySuite) TestFevgaSharesDirection() {
	rc, err := s.registry.Get("fevga")
	s.Require().NoError(err)

	s.Equal(-1, rc.Direction[model.ColorWhite])
	s.Equal(-1, rc.Direction[model.ColorBlack])
	s.False(rc.Hitting.CanHit)
	s.False(rc.Hitting.PinInstead)

	loW, hiW := rc.HomeRange(model.ColorWhite)
	loB, hiB := rc.HomeRange(model.ColorBlack)
	s.Equal(loW, loB)
	s.Equal(hiW, hiB)
}

func (s *RegistrySuite) TestDutchStartsOnBar() {
	rc, err := s.registry.Get("dutch")
	s.Require().NoError(err)

	s.Equal(15, rc.Layout.Bar[model.ColorWhite])
	s.Equal(15, rc.Layout.Bar[model.ColorBlack])
	s.Empty(rc.Layout.Points[model.ColorWhite])
}

func (s *RegistrySuite) TestIrishLimitsDoubles() {
	rc, err := s.registry.Get("irish")
	s.Require().NoError(err)
	s.Equal(2, rc.DoublesUses)
}

func (s *RegistrySuite) TestOverrideDirectoryReplacesBuiltin() {
	dir := s.T().TempDir()
	override := `
name: standard
description: House rules.
board:
  points: 24
  initial_setup:
    white: {24: 15}
    black: {1: 15}
movement:
  direction: {white: -1, black: 1}
doubles_uses: 2
`
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "standard.yaml"), []byte(override), 0o644))

	registry, err := NewRegistry(dir, testutil.NopLogger())
	s.Require().NoError(err)

	rc, err := registry.Get("standard")
	s.Require().NoError(err)
	s.Equal(2, rc.DoublesUses)
	s.Equal("House rules.", rc.Description)

	// Untouched builtins survive alongside the override.
	_, err = registry.Get("plakoto")
	s.NoError(err)
}

func (s *RegistrySuite) TestOverrideDirectoryWithBadFileFailsLoad() {
	dir := s.T().TempDir()
	bad := `
name: broken
board:
  points: 24
  initial_setup:
    white: {24: 15}
    black: {1: 15}
movement:
  direction: {white: 0, black: 1}
`
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(bad), 0o644))

	_, err := NewRegistry(dir, testutil.NopLogger())
	s.Require().Error(err)

	var cfgErr *ConfigError
	s.ErrorAs(err, &cfgErr)
	s.Equal("broken", cfgErr.Variant)
	s.Equal("movement.direction", cfgErr.Field)
}

// Board construction

func (s *RegistrySuite) TestInitialBoardStandard() {
	rc, err := s.registry.Get("standard")
	s.Require().NoError(err)

	b := InitialBoard(rc)

	s.Equal(2, b.Point(24).Count(model.ColorWhite))
	s.Equal(5, b.Point(13).Count(model.ColorWhite))
	s.Equal(3, b.Point(8).Count(model.ColorWhite))
	s.Equal(5, b.Point(6).Count(model.ColorWhite))
	s.Equal(2, b.Point(1).Count(model.ColorBlack))
	s.Equal(5, b.Point(19).Count(model.ColorBlack))

	s.Equal(0, b.Bar[model.ColorWhite])
	s.Equal(15, b.Checkers[model.ColorWhite])
	s.Equal(15, b.TotalCheckers(model.ColorBlack))
	s.Equal(model.ColorWhite, b.CurrentPlayer)
	s.Equal(model.TurnStateAwaitingRoll, b.State)
	s.False(b.DiceRolled())
}

func (s *RegistrySuite) TestInitialBoardDutch() {
	rc, err := s.registry.Get("dutch")
	s.Require().NoError(err)

	b := InitialBoard(rc)

	s.Equal(15, b.Bar[model.ColorWhite])
	s.Equal(15, b.Bar[model.ColorBlack])
	s.Equal(0, b.OnBoard(model.ColorWhite))
	s.Equal(15, b.TotalCheckers(model.ColorWhite))
}

func (s *RegistrySuite) TestEveryVariantBuildsAConsistentBoard() {
	for _, rc := range s.registry.All() {
		b := InitialBoard(rc)
		for _, c := range model.Colors() {
			s.Equal(rc.TotalCheckers(c), b.TotalCheckers(c), "variant %s color %s", rc.Name, c)
			s.Positive(b.TotalCheckers(c), "variant %s color %s", rc.Name, c)

			lo, hi := rc.HomeRange(c)
			s.GreaterOrEqual(lo, 1, "variant %s", rc.Name)
			s.LessOrEqual(hi, rc.Points, "variant %s", rc.Name)
			s.Equal(5, hi-lo, "variant %s home board should span six points", rc.Name)
		}
	}
}

package moves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/testutil"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
)

// testRules returns a standard-like config that individual tests tweak.
func testRules() *model.RuleConfig {
	return &model.RuleConfig{
		Name:        "test",
		Points:      24,
		Direction:   map[model.Color]int{model.ColorWhite: -1, model.ColorBlack: 1},
		Hitting:     model.HittingRules{CanHit: true},
		DoublesUses: 4,
		Combined:    model.CombinedRules{Normal: true},
		BearingOff:  model.BearingOffRules{Enabled: true, AllInOuterBoard: true},
		ForcedMoves: model.ForcedMoveRules{MustUseAllDice: true, MustUseHigherIfOnlyOne: true},
	}
}

// standardBoard builds the real standard starting position.
func standardBoard(t *testing.T) (*model.Board, *model.RuleConfig) {
	t.Helper()
	registry, err := variant.NewRegistry("", testutil.NopLogger())
	require.NoError(t, err)
	rc, err := registry.Get("standard")
	require.NoError(t, err)
	return variant.InitialBoard(rc), rc
}

// roll puts dice on the board the way a turn would, doubles expanded.
func roll(b *model.Board, rules *model.RuleConfig, d1, d2 int) {
	b.Dice = [2]int{d1, d2}
	if d1 == d2 {
		b.RemainingDice = nil
		for i := 0; i < rules.DoublesUses; i++ {
			b.RemainingDice = append(b.RemainingDice, d1)
		}
	} else {
		b.RemainingDice = []int{d1, d2}
	}
	b.ConsumedDice = nil
	b.State = model.TurnStateDiceActive
}

func put(b *model.Board, c model.Color, placements map[int]int) {
	for point, n := range placements {
		b.Point(point).Add(c, n)
		b.Checkers[c] += n
	}
}

func TestOpeningRollStandard(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 6, 5)

	legal := Legal(b, rc, model.ColorWhite)

	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 18, Die: 6})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 13, To: 8, Die: 5})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 13, Die: 11})

	// 24/19 runs into the five black checkers holding the 19 point.
	assert.NotContains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 19, Die: 5})
	// 6/1 runs into the black anchor on the 1 point.
	assert.NotContains(t, legal, model.Move{Type: model.MoveNormal, From: 6, To: 1, Die: 5})

	assert.Len(t, legal, 7)
}

func TestOpeningRollStandardBlackMirrors(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 6, 5)

	legal := Legal(b, rc, model.ColorBlack)

	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 1, To: 7, Die: 6})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 12, To: 17, Die: 5})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 1, To: 12, Die: 11})
	assert.NotContains(t, legal, model.Move{Type: model.MoveNormal, From: 19, To: 24, Die: 5})
	assert.Len(t, legal, 7)
}

func TestNoMovesWithoutDice(t *testing.T) {
	b, rc := standardBoard(t)
	assert.Empty(t, Legal(b, rc, model.ColorWhite))
}

func TestNoMovesWhenGameOver(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 6, 5)
	b.State = model.TurnStateGameOver
	b.Winner = model.ColorBlack
	assert.Empty(t, Legal(b, rc, model.ColorWhite))
}

func TestDoublesOfferOnlyTheRolledValue(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 3, 3)

	legal := Legal(b, rc, model.ColorWhite)
	require.NotEmpty(t, legal)
	for _, m := range legal {
		assert.Equal(t, 3, m.Die, "doubles must not produce combined moves: %s", m)
	}
}

func TestCombinedUsesTheActualDiceSum(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 2, 5)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 13, To: 6, Die: 7})
	// 24/17 would also use the sum but black holds the 17 point.
	assert.NotContains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 17, Die: 7})
	for _, m := range legal {
		assert.NotEqual(t, 6, m.Die, "no die shows 6 this turn: %s", m)
	}
}

func TestCombinedGoneAfterOneDieIsUsed(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 6, 5)
	require.NoError(t, Apply(b, rc, model.ColorWhite, model.Move{Type: model.MoveNormal, From: 24, To: 18, Die: 6}))

	legal := Legal(b, rc, model.ColorWhite)
	require.NotEmpty(t, legal)
	for _, m := range legal {
		assert.Equal(t, 5, m.Die)
	}
}

func TestCombinedDisabledByVariant(t *testing.T) {
	b, rc := standardBoard(t)
	rc = cloneRules(rc)
	rc.Combined.Normal = false
	roll(b, rc, 6, 5)

	for _, m := range Legal(b, rc, model.ColorWhite) {
		assert.LessOrEqual(t, m.Die, 6)
	}
}

func TestBarEntryComesFirst(t *testing.T) {
	b, rc := standardBoard(t)
	b.Point(24).Remove(model.ColorWhite, 1)
	b.Bar[model.ColorWhite]++
	roll(b, rc, 6, 3)

	legal := Legal(b, rc, model.ColorWhite)

	// Die 6 enters on the 19 point, which black holds; die 3 enters on 22.
	require.Len(t, legal, 1)
	assert.Equal(t, model.Move{Type: model.MoveEnter, To: 22, Die: 3}, legal[0])
}

func TestFullyBlockedEntryMeansNoMoves(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	b.Bar[model.ColorWhite] = 2
	// Black holds the entire white entry quadrant (19-24).
	put(b, model.ColorBlack, map[int]int{19: 2, 20: 2, 21: 2, 22: 2, 23: 2, 24: 2})
	put(b, model.ColorWhite, map[int]int{13: 13})
	roll(b, rc, 6, 3)

	assert.Empty(t, Legal(b, rc, model.ColorWhite))
}

func TestCombinedEntryWhenVariantAllowsIt(t *testing.T) {
	rc := testRules()
	rc.Combined.Enter = true
	b := model.NewBoard(24)
	b.Bar[model.ColorWhite] = 1
	put(b, model.ColorWhite, map[int]int{13: 14})
	// Black holds both single-die entry points but not the combined one.
	put(b, model.ColorBlack, map[int]int{19: 2, 22: 2, 1: 11})
	roll(b, rc, 6, 3)

	legal := Legal(b, rc, model.ColorWhite)
	require.Len(t, legal, 1)
	assert.Equal(t, model.Move{Type: model.MoveEnter, To: 16, Die: 9}, legal[0])
}

func TestOpponentBlotDoesNotBlock(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{10: 1})
	put(b, model.ColorBlack, map[int]int{7: 1})
	roll(b, rc, 3, 1)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 10, To: 7, Die: 3})
}

func TestMadePointAlwaysBlocks(t *testing.T) {
	rc := testRules()
	rc.Hitting = model.HittingRules{} // even with hitting off
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{10: 1})
	put(b, model.ColorBlack, map[int]int{7: 2})
	roll(b, rc, 3, 1)

	legal := Legal(b, rc, model.ColorWhite)
	assert.NotContains(t, legal, model.Move{Type: model.MoveNormal, From: 10, To: 7, Die: 3})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 10, To: 9, Die: 1})
}

func TestSameDirectionVariant(t *testing.T) {
	rc := testRules()
	rc.Direction = map[model.Color]int{model.ColorWhite: -1, model.ColorBlack: -1}
	rc.Hitting = model.HittingRules{}
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{24: 15})
	put(b, model.ColorBlack, map[int]int{24: 15})
	roll(b, rc, 5, 2)

	legal := Legal(b, rc, model.ColorBlack)
	// Black moves toward lower numbers just like white.
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 19, Die: 5})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 22, Die: 2})
}

func TestPinnedCheckerCannotMove(t *testing.T) {
	rc := testRules()
	rc.Hitting = model.HittingRules{PinInstead: true}
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{5: 1})
	put(b, model.ColorBlack, map[int]int{5: 1, 20: 14})
	b.Point(5).Pinned = model.ColorBlack
	roll(b, rc, 2, 1)

	legal := Legal(b, rc, model.ColorBlack)
	for _, m := range legal {
		assert.NotEqual(t, 5, m.From, "pinned checker moved: %s", m)
	}
}

func TestPinnedPointBlocksItsOwner(t *testing.T) {
	rc := testRules()
	rc.Hitting = model.HittingRules{PinInstead: true}
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{5: 1})
	put(b, model.ColorBlack, map[int]int{5: 1, 3: 2})
	b.Point(5).Pinned = model.ColorBlack
	roll(b, rc, 2, 1)

	// Black may not land on 5: the single white pinner owns the point.
	legal := Legal(b, rc, model.ColorBlack)
	assert.NotContains(t, legal, model.Move{Type: model.MoveNormal, From: 3, To: 5, Die: 2})
}

func TestOwnPinCanBeReinforced(t *testing.T) {
	rc := testRules()
	rc.Hitting = model.HittingRules{PinInstead: true}
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{5: 1, 8: 1})
	put(b, model.ColorBlack, map[int]int{5: 1})
	b.Point(5).Pinned = model.ColorBlack
	roll(b, rc, 3, 1)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 8, To: 5, Die: 3})
}

// Bearing off

func TestNoBearOffWhileCheckerIsOutside(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{6: 5, 5: 5, 4: 4, 7: 1})
	roll(b, rc, 6, 5)

	for _, m := range Legal(b, rc, model.ColorWhite) {
		assert.NotEqual(t, model.MoveBearOff, m.Type, "bear-off offered with a checker on 7: %s", m)
	}
}

func TestNoBearOffWhileOnBar(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{6: 5, 5: 5, 4: 4})
	b.Bar[model.ColorWhite] = 1
	roll(b, rc, 6, 5)

	for _, m := range Legal(b, rc, model.ColorWhite) {
		assert.Equal(t, model.MoveEnter, m.Type)
	}
}

func TestBearOffExactDie(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{6: 2, 3: 2})
	roll(b, rc, 6, 3)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 6, Die: 6})
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 3, Die: 3})
}

func TestBearOffOvershootOnlyFromFarthestPoint(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{4: 1, 2: 1})
	roll(b, rc, 6, 6)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 4, Die: 6})
	assert.NotContains(t, legal, model.Move{Type: model.MoveBearOff, From: 2, Die: 6})

	// Once the 4 point empties, the 2 point is the farthest and may overshoot.
	require.NoError(t, Apply(b, rc, model.ColorWhite, model.Move{Type: model.MoveBearOff, From: 4, Die: 6}))
	legal = Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 2, Die: 6})
}

func TestBearOffForBlackUsesItsOwnHome(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorBlack, map[int]int{22: 2, 19: 1})
	roll(b, rc, 3, 6)

	legal := Legal(b, rc, model.ColorBlack)
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 22, Die: 3})
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 19, Die: 6})
}

func TestBearOffDisabledVariant(t *testing.T) {
	rc := testRules()
	rc.BearingOff.Enabled = false
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{6: 5, 3: 10})
	roll(b, rc, 6, 3)

	for _, m := range Legal(b, rc, model.ColorWhite) {
		assert.NotEqual(t, model.MoveBearOff, m.Type)
	}
}

func TestBearOffWithoutHomeRequirement(t *testing.T) {
	rc := testRules()
	rc.BearingOff.AllInOuterBoard = false
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{3: 1, 13: 14})
	roll(b, rc, 3, 2)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 3, Die: 3},
		"variant without the home requirement bears off with checkers still outside")
}

func TestCombinedBearOffWhenVariantAllowsIt(t *testing.T) {
	rc := testRules()
	rc.Combined.BearOff = true
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{5: 2})
	roll(b, rc, 3, 2)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveBearOff, From: 5, Die: 5})
}

// Forced-move priority

func TestHigherDieForcedWhenOnlyOnePlayable(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{10: 1, 24: 1})
	put(b, model.ColorBlack, map[int]int{1: 2, 15: 2, 18: 2, 21: 2})
	roll(b, rc, 6, 3)

	// Die 6 plays 10/4 and die 3 plays 10/7, but neither leaves the other
	// die playable, so the higher die wins.
	legal := Legal(b, rc, model.ColorWhite)
	require.Len(t, legal, 1)
	assert.Equal(t, model.Move{Type: model.MoveNormal, From: 10, To: 4, Die: 6}, legal[0])
}

func TestLowerDieAllowedWhenHigherHasNoMove(t *testing.T) {
	rc := testRules()
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{24: 1})
	put(b, model.ColorBlack, map[int]int{15: 2, 18: 2})
	roll(b, rc, 6, 3)

	// 24/18 is blocked; 24/21 and then 21/15 is blocked too, so only the 3
	// ever plays and it stays legal.
	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 24, To: 21, Die: 3})
}

func TestHigherDieRuleOffByVariant(t *testing.T) {
	rc := testRules()
	rc.ForcedMoves.MustUseHigherIfOnlyOne = false
	b := model.NewBoard(24)
	put(b, model.ColorWhite, map[int]int{10: 1, 24: 1})
	put(b, model.ColorBlack, map[int]int{1: 2, 15: 2, 18: 2, 21: 2})
	roll(b, rc, 6, 3)

	legal := Legal(b, rc, model.ColorWhite)
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 10, To: 4, Die: 6})
	assert.Contains(t, legal, model.Move{Type: model.MoveNormal, From: 10, To: 7, Die: 3})
}

func TestNoFilterWhenBothDiceCanPlayInSequence(t *testing.T) {
	b, rc := standardBoard(t)
	roll(b, rc, 6, 5)

	legal := Legal(b, rc, model.ColorWhite)
	dies := map[int]bool{}
	for _, m := range legal {
		dies[m.Die] = true
	}
	assert.True(t, dies[6])
	assert.True(t, dies[5])
}

// Generator and validator must agree move for move.

func TestValidatorAgreesWithGenerator(t *testing.T) {
	boards := map[string]func(t *testing.T) (*model.Board, *model.RuleConfig){
		"opening": func(t *testing.T) (*model.Board, *model.RuleConfig) {
			b, rc := standardBoard(t)
			roll(b, rc, 6, 5)
			return b, rc
		},
		"on the bar": func(t *testing.T) (*model.Board, *model.RuleConfig) {
			b, rc := standardBoard(t)
			b.Point(24).Remove(model.ColorWhite, 1)
			b.Bar[model.ColorWhite]++
			roll(b, rc, 6, 3)
			return b, rc
		},
		"bearing off": func(t *testing.T) (*model.Board, *model.RuleConfig) {
			rc := testRules()
			b := model.NewBoard(24)
			put(b, model.ColorWhite, map[int]int{6: 3, 4: 2, 2: 1})
			put(b, model.ColorBlack, map[int]int{1: 2, 12: 5})
			roll(b, rc, 6, 4)
			return b, rc
		},
	}

	for name, build := range boards {
		t.Run(name, func(t *testing.T) {
			b, rc := build(t)
			legal := Legal(b, rc, model.ColorWhite)

			generated := map[model.Move]bool{}
			for _, m := range legal {
				generated[m] = true
			}

			for _, mt := range []model.MoveType{model.MoveNormal, model.MoveEnter, model.MoveBearOff} {
				for from := 0; from <= 24; from++ {
					for to := 0; to <= 24; to++ {
						for die := 1; die <= 12; die++ {
							m := model.Move{Type: mt, From: from, To: to, Die: die}
							valid, _ := Validate(b, rc, model.ColorWhite, m)
							assert.Equal(t, generated[m], valid, "generator and validator disagree on %s", m)
						}
					}
				}
			}
		})
	}
}

func cloneRules(rc *model.RuleConfig) *model.RuleConfig {
	clone := *rc
	clone.Direction = map[model.Color]int{}
	for c, d := range rc.Direction {
		clone.Direction[c] = d
	}
	return &clone
}

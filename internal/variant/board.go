package variant

import "github.com/mihailDamchevski/TABLA-BAKI/internal/model"

// InitialBoard builds a fresh board from the variant's starting layout.
// White moves first until SetStartingPlayer says otherwise.
func InitialBoard(rc *model.RuleConfig) *model.Board {
	b := model.NewBoard(rc.Points)

	for _, c := range model.Colors() {
		for point, count := range rc.Layout.Points[c] {
			b.Point(point).Add(c, count)
		}
		b.Bar[c] = rc.Layout.Bar[c]
		b.Checkers[c] = rc.TotalCheckers(c)
	}

	b.CurrentPlayer = model.ColorWhite
	b.State = model.TurnStateAwaitingRoll
	return b
}

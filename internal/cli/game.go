package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameRollCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameLegalCmd())
	cmd.AddCommand(newGameEndTurnCmd())
	cmd.AddCommand(newGameSetPlayerCmd())
	cmd.AddCommand(newGameAIMoveCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [variant]",
		Short: "Create a new game",
		Long: `Create a new game of the given variant. Without an argument the
default variant from the config file is used, falling back to standard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := cfg.DefaultVariant
			if len(args) == 1 {
				variant = args[0]
			}
			if variant == "" {
				variant = "standard"
			}

			req := map[string]string{"variant": variant}
			var result GameState

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show the current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

func newGameRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <game-id>",
		Short: "Roll the dice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RollResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/roll", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	var die int

	cmd := &cobra.Command{
		Use:   "move <game-id> <from> <to>",
		Short: "Play one checker move",
		Long: `Play one checker move. Use "bar" as the origin to enter from the bar
and "off" as the target to bear off:

  tabla game move A1B2C3D4E5F6 24 18
  tabla game move A1B2C3D4E5F6 bar 20
  tabla game move A1B2C3D4E5F6 3 off

The die value is matched against the legal moves automatically; pass --die
to pick one when more than one die can make the same move.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := args[0]

			moveType := "normal"
			var from, to int
			var err error

			switch {
			case strings.EqualFold(args[1], "bar"):
				moveType = "enter"
				to, err = strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("invalid target point: %w", err)
				}
			case strings.EqualFold(args[2], "off"):
				moveType = "bear_off"
				from, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid origin point: %w", err)
				}
			default:
				from, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid origin point: %w", err)
				}
				to, err = strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("invalid target point: %w", err)
				}
			}

			var legal LegalMovesResult
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/legal-moves", gameID), &legal); err != nil {
				return err
			}

			match, ok := findMove(legal.LegalMoves, moveType, from, to, die)
			if !ok {
				switch moveType {
				case "enter":
					return fmt.Errorf("no legal entry to point %d", to)
				case "bear_off":
					return fmt.Errorf("no legal bear off from point %d", from)
				default:
					return fmt.Errorf("no legal move from %d to %d", from, to)
				}
			}

			req := map[string]any{
				"move_type":  match.MoveType,
				"from_point": match.FromPoint,
				"to_point":   match.ToPoint,
				"die_value":  match.DieValue,
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", gameID), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&die, "die", 0, "Die value to use when ambiguous")
	return cmd
}

// findMove locates the legal move matching the requested origin and target.
// Sorted order means the smallest die wins when die is unspecified.
func findMove(legal []LegalMove, moveType string, from, to, die int) (LegalMove, bool) {
	for _, m := range legal {
		if m.MoveType != moveType {
			continue
		}
		if moveType != "enter" && m.FromPoint != from {
			continue
		}
		if moveType != "bear_off" && m.ToPoint != to {
			continue
		}
		if die != 0 && m.DieValue != die {
			continue
		}
		return m, true
	}
	return LegalMove{}, false
}

func newGameLegalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legal <game-id>",
		Short: "List the legal moves for the current player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LegalMovesResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/legal-moves", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEndTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-turn <game-id>",
		Short: "Pass the turn to the opponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TurnResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/end-turn", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSetPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-player <game-id> <white|black>",
		Short: "Choose which color moves first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player": strings.ToLower(args[1])}
			var result TurnResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/set-player", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAIMoveCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "ai-move <game-id>",
		Short: "Let the bot play one move for the current player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := difficulty
			if d == "" {
				d = cfg.DefaultDifficulty
			}

			var req any
			if d != "" {
				req = map[string]string{"difficulty": d}
			}

			var result AIMoveResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/ai-move", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Bot difficulty: easy, medium, hard")
	return cmd
}

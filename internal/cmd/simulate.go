package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-core/internal"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/service"
)

func Simulate(opts *globals) *cobra.Command {
	var (
		rounds             int
		aiDifficulty       string
		opponentDifficulty string
		swap               bool
		seed               int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Pit two AI levels against each other",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays a number of rounds between two AI players and
			prints the score from the point of view of --ai-difficulty.

			The opponent starts as X. With --swap the marks change hands
			after every round.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				opts.conf.Game.Seed = seed
			}

			if err := opts.validate(); err != nil {
				return err
			}

			ai, err := entity.ParseDifficulty(aiDifficulty)
			if err != nil {
				return fmt.Errorf("--ai-difficulty: %w", err)
			}

			opponent, err := entity.ParseDifficulty(opponentDifficulty)
			if err != nil {
				return fmt.Errorf("--opponent-difficulty: %w", err)
			}

			tally, err := app.RunSimulation(cmd.Context(), opts.logger, opts.conf, service.SimulateOptions{
				Rounds:             rounds,
				AIDifficulty:       ai,
				OpponentDifficulty: opponent,
				Human:              entity.FirstMover,
				SwapMarks:          swap,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s over %d rounds: %d wins, %d losses, %d draws\n",
				ai, opponent, tally.Rounds(), tally.AIWins, tally.OpponentWins, tally.Draws)

			return err
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 100, "Number of rounds to play")
	cmd.Flags().StringVar(&aiDifficulty, "ai-difficulty", string(entity.HardDifficulty), "Difficulty of the scored AI")
	cmd.Flags().StringVar(&opponentDifficulty, "opponent-difficulty", string(entity.EasyDifficulty), "Difficulty of its opponent")
	cmd.Flags().BoolVar(&swap, "swap", false, "Swap marks after every round")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed, 0 seeds from the clock")

	return cmd
}

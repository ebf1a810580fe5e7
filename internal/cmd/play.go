package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-core/internal"
)

func Play(opts *globals) *cobra.Command {
	var (
		difficulty string
		mark       string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive game. Enter moves as "row col"
			with rows and columns numbered 0 to 2 from the top left.

			X always moves first. If you choose O the AI opens the round.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("difficulty") {
				opts.conf.Game.Difficulty = difficulty
			}

			if cmd.Flags().Changed("mark") {
				opts.conf.Game.HumanMark = mark
			}

			if cmd.Flags().Changed("seed") {
				opts.conf.Game.Seed = seed
			}

			if err := opts.validate(); err != nil {
				return err
			}

			return app.RunApp(cmd.Context(), opts.logger, opts.conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "AI difficulty: easy, medium or hard")
	cmd.Flags().StringVarP(&mark, "mark", "m", "", "Your mark: X or O")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for the AI, 0 seeds from the clock")

	return cmd
}

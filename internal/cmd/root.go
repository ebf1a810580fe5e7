package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-core/internal"
	"github.com/rocketscienceinc/tictactoe-core/internal/config"
)

const (
	localConfigFile = "config.yml"
	xdgConfigFile   = "tictactoe/config.yml"
)

// globals is filled by the root command before any subcommand runs.
type globals struct {
	configPath string
	logLevel   string

	conf   *config.Config
	logger *slog.Logger
}

func Root() *cobra.Command {
	opts := &globals{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a computer opponent",
		Long: heredoc.Doc(`tictactoe is a terminal game of noughts and crosses against
			an AI with three difficulty levels.

			Settings are read from --config, then ./config.yml, then
			$XDG_CONFIG_HOME/tictactoe/config.yml. TICTACTOE_* environment
			variables override the file.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(Play(opts))
	root.AddCommand(Simulate(opts))

	return root
}

func (that *globals) load(cmd *cobra.Command) error {
	path := that.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	conf, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = that.logLevel
	}

	that.conf = conf
	that.logger = app.NewLogger(conf, cmd.ErrOrStderr())

	that.logger.Debug("config loaded", "path", path)

	return nil
}

// validate runs after the subcommand applied its own flags to the config.
func (that *globals) validate() error {
	if err := that.conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// defaultConfigPath returns "" when no config file exists; Load then reads the environment only.
func defaultConfigPath() string {
	if _, err := os.Stat(localConfigFile); err == nil {
		return localConfigFile
	}

	path, err := xdg.SearchConfigFile(xdgConfigFile)
	if err != nil {
		return ""
	}

	return path
}

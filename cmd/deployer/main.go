package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/NilFoundation/deployer/cmd/deployer/internal/common"
	"github.com/NilFoundation/deployer/cmd/deployer/internal/config"
	"github.com/NilFoundation/deployer/cmd/deployer/internal/deploy"
	"github.com/NilFoundation/deployer/cmd/deployer/internal/history"
	"github.com/NilFoundation/deployer/cmd/deployer/internal/version"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/NilFoundation/deployer/internal/deployer"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd  *cobra.Command
	config   common.Config
	cfgFile  string
	logLevel string
	verbose  bool
}

var logger = logging.NewLogger("root")

var noConfigCmd = map[string]struct{}{
	"help":             {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"config":           {},
	"version":          {},
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(os.Stdout).Execute(ctx, os.Args[1:])
}

func NewRootCommand(out io.Writer) *RootCommand {
	// lets "config" subcommands keep their own pre-run alongside the root one
	cobra.EnableTraverseRunHooks = true

	common.SetDefaults()
	common.BindEnv()

	var rootCmd *RootCommand

	rootCmd = &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "deployer",
			Short: "Deploy smart contracts to an EVM network",
			Long: "Deploy smart contracts to an EVM network. " +
				"Without a subcommand the contract named in the config (ChainBattles by default) is deployed.",
			Args: cobra.NoArgs,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if err := logging.SetupLevel(rootCmd.verbose, rootCmd.logLevel); err != nil {
					return err
				}

				// "config set" writes to the file, so it is selected for every command
				common.SetConfigFile(rootCmd.cfgFile)

				// Traverse up to find the top-level command
				for cmd.HasParent() && cmd.Parent() != rootCmd.baseCmd {
					cmd = cmd.Parent()
				}

				if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
					return nil
				}
				return rootCmd.loadConfig()
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				return deploy.Run(cmd.Context(), &rootCmd.config, cmd.OutOrStdout(), rootCmd.config.Contract, nil)
			},
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
	rootCmd.baseCmd.SetOut(out)

	rootCmd.baseCmd.PersistentFlags().StringVarP(&rootCmd.cfgFile, "config", "c", common.DefaultConfigPath, "Path to config file")
	rootCmd.baseCmd.PersistentFlags().StringVarP(&rootCmd.logLevel, "log-level", "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic")
	rootCmd.baseCmd.PersistentFlags().BoolVarP(
		&rootCmd.verbose,
		"verbose",
		"v",
		false,
		"Verbose mode (print logs to stderr)",
	)

	rootCmd.registerSubCommands()
	return rootCmd
}

// registerSubCommands adds all subcommands to the root command
func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		config.GetCommand(&rc.cfgFile),
		deploy.GetCommand(&rc.config),
		history.GetCommand(&rc.config),
		version.GetCommand(),
	)
}

// loadConfig loads the configuration from the config file and the environment
func (rc *RootCommand) loadConfig() error {
	fileFound, err := common.LoadConfig(&rc.config)
	if err != nil {
		return err
	}

	if !fileFound {
		logger.Debug().Msgf("Config file %s not found, using defaults and environment", rc.cfgFile)
		logger.Debug().Msgf("create it with `%s config init`", rc.baseCmd.Name())
	}
	logger.Debug().Msg("Configuration loaded successfully")
	return nil
}

// Execute runs the root command and returns the process exit code.
// Errors are printed to the command output.
func (rc *RootCommand) Execute(ctx context.Context, args []string) int {
	rc.baseCmd.SetArgs(args)
	if err := rc.baseCmd.ExecuteContext(ctx); err != nil {
		// a failed deployment has been reported already
		if !errors.Is(err, deploy.ErrDeploymentFailed) {
			_, _ = fmt.Fprintln(rc.baseCmd.OutOrStdout(), err)
		}
		return deployer.ExitFailure
	}
	return deployer.ExitSuccess
}

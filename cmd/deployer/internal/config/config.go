package config

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/NilFoundation/deployer/cmd/deployer/internal/common"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const hiddenValue = "<hidden>"

var logger = logging.NewLogger("config")

// Subcommands that work without an existing config file.
var withoutFile = map[string]struct{}{
	"help": {},
	"init": {},
	"set":  {},
}

func GetCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Manage the config file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			common.SetConfigFile(*configPath)
			if _, ok := withoutFile[cmd.Name()]; ok {
				return nil
			}
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newInitCommand(configPath),
		newShowCommand(),
		newGetCommand(),
		newSetCommand(),
	)
	return cmd
}

func newInitCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:          "init",
		Short:        "Create the config file from a template",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := common.InitDefaultConfig(*configPath)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to create config")
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config initialized: %s\n", path)
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "Print the options set in the config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())

			section, _ := viper.AllSettings()[common.ConfigSection].(map[string]any)
			for _, key := range slices.Sorted(maps.Keys(section)) {
				printOption(out, key, section[key])
			}
			return nil
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "get [key]",
		Short:        "Print a config option",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := viper.Get(common.ConfigSection + "." + key)
			if value == nil {
				return fmt.Errorf("key %q is not found in config", key)
			}
			printOption(cmd.OutOrStdout(), key, value)
			return nil
		},
	}
}

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "set [key] [value]",
		Short:        "Write a config option",
		Long:         "Write a config option, creating the config file when it does not exist. The value is validated first.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !common.IsKnownField(key) {
				return fmt.Errorf("key %q is not known", key)
			}
			if err := validateOption(key, value); err != nil {
				return err
			}

			if err := common.PatchConfig(map[string]any{key: value}, true); err != nil {
				logger.Error().Err(err).Str("key", key).Msg("Failed to set config value")
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %q to %q\n", key, fmt.Sprint(displayValue(key, value)))
			return nil
		},
	}
}

// validateOption decodes the value the same way the config file is loaded.
func validateOption(key, value string) error {
	var cfg common.Config
	decoderConfig := &mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
	common.UpdateDecoderConfig(decoderConfig)

	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]any{key: value}); err != nil {
		return fmt.Errorf("invalid value for %q: %w", key, err)
	}
	return nil
}

func printOption(out io.Writer, key string, value any) {
	_, _ = fmt.Fprintf(out, "%s: %v\n", key, displayValue(key, value))
}

func displayValue(key string, value any) any {
	if key == common.PrivateKeyField {
		return hiddenValue
	}
	return value
}

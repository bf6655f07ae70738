package deploy

import (
	"context"
	"errors"
	"io"

	"github.com/NilFoundation/deployer/cmd/deployer/internal/common"
	"github.com/NilFoundation/deployer/internal/deployer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrDeploymentFailed is returned after the failure has already been printed.
var ErrDeploymentFailed = errors.New("deployment failed")

func GetCommand(cfg *common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [contract] [args...]",
		Short: "Deploy a contract",
		Long: "Deploy a contract and wait until the deployment is confirmed. " +
			"The contract is a bare (ChainBattles) or fully qualified (contracts/ChainBattles.sol:ChainBattles) name, " +
			"the configured contract is deployed when it is omitted. " +
			"Constructor arguments follow the name; arrays are passed as JSON lists. " +
			"Flags go before the contract name, everything after it is passed to the constructor, " +
			"so negative numbers need no escaping.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, cfg)
		},
		SilenceUsage: true,
	}

	setFlags(cmd)
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.artifactsDir,
		artifactsDirFlag,
		"",
		"Directory with compiled artifacts (overrides \"artifacts_dir\")",
	)

	cmd.Flags().StringVar(
		&params.sourcesDir,
		sourcesDirFlag,
		"",
		"Directory with Solidity sources to compile (overrides \"sources_dir\")",
	)

	cmd.Flags().Uint64Var(
		&params.chainId,
		chainIdFlag,
		0,
		"Chain id to sign the transaction for (requested from the node by default)",
	)

	cmd.Flags().Uint64Var(
		&params.gasLimit,
		gasLimitFlag,
		0,
		"Gas limit of the deployment transaction (estimated by default)",
	)

	cmd.Flags().Var(
		&params.gasPrice,
		gasPriceFlag,
		"Gas price in wei, sends a legacy transaction",
	)

	cmd.Flags().Var(
		&params.value,
		valueFlag,
		"Value in wei sent to a payable constructor",
	)

	cmd.Flags().DurationVar(
		&params.receiptTimeout,
		receiptTimeoutFlag,
		0,
		"How long to wait for the deployment receipt",
	)
}

// applyFlags overrides the config with the flags given explicitly.
func applyFlags(flags *pflag.FlagSet, cfg *common.Config) {
	if flags.Changed(artifactsDirFlag) {
		cfg.ArtifactsDir = params.artifactsDir
	}
	if flags.Changed(sourcesDirFlag) {
		cfg.SourcesDir = params.sourcesDir
	}
	if flags.Changed(chainIdFlag) {
		cfg.ChainId = params.chainId
	}
	if flags.Changed(gasLimitFlag) {
		cfg.GasLimit = params.gasLimit
	}
	if flags.Changed(gasPriceFlag) {
		cfg.GasPrice = params.gasPrice.Value
	}
	if flags.Changed(valueFlag) {
		cfg.Value = params.value.Value
	}
	if flags.Changed(receiptTimeoutFlag) {
		cfg.ReceiptTimeout = params.receiptTimeout
	}
}

func runCommand(cmd *cobra.Command, args []string, cfg *common.Config) error {
	applyFlags(cmd.Flags(), cfg)

	contract := cfg.Contract
	if len(args) > 0 {
		contract = args[0]
		args = args[1:]
	}
	return Run(cmd.Context(), cfg, cmd.OutOrStdout(), contract, args)
}

// Run deploys the contract; the outcome is printed to out.
func Run(ctx context.Context, cfg *common.Config, out io.Writer, contract string, args []string) error {
	if contract == "" {
		contract = common.DefaultContract
	}

	d, closeDeployer, err := common.NewDeployer(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer closeDeployer()

	if code := d.Run(ctx, contract, args...); code != deployer.ExitSuccess {
		return ErrDeploymentFailed
	}
	return nil
}

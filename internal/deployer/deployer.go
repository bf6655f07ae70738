package deployer

import (
	"context"
	"fmt"
	"io"

	"github.com/NilFoundation/deployer/common/logging"
	"github.com/rs/zerolog"
)

//go:generate go tool moq -out deployer_generated_mock.go -rm -stub -with-resets . FactoryProvider ContractFactory Deployment Recorder

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// FactoryProvider resolves a contract name into something that can deploy it.
type FactoryProvider interface {
	GetContractFactory(ctx context.Context, name string) (ContractFactory, error)
}

type ContractFactory interface {
	// Deploy submits the deployment transaction; it does not wait for it.
	Deploy(ctx context.Context, args ...string) (Deployment, error)
}

// Deployment is a handle to a pending deployment.
type Deployment interface {
	// Deployed blocks until the network confirms the deployment.
	Deployed(ctx context.Context) error
	Address() string
	TxHash() string
}

// deploymentDetails is implemented by deployments that know where and by whom they were sent.
type deploymentDetails interface {
	ChainId() uint64
	Deployer() string
}

type Recorder interface {
	Record(ctx context.Context, result *Result) error
}

type Result struct {
	ContractName string
	Address      string
	TxHash       string
	ChainId      uint64
	Deployer     string
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *Result) error { return nil }

type Deployer struct {
	provider FactoryProvider
	recorder Recorder
	out      io.Writer
	logger   zerolog.Logger
}

// NewDeployer creates a deployer printing its outcome to out.
// recorder may be nil.
func NewDeployer(provider FactoryProvider, recorder Recorder, out io.Writer, logger zerolog.Logger) *Deployer {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Deployer{
		provider: provider,
		recorder: recorder,
		out:      out,
		logger:   logger,
	}
}

// Deploy deploys one instance of the contract and waits until it is confirmed.
// Nothing is retried: a failed step fails the whole deployment.
func (d *Deployer) Deploy(ctx context.Context, contractName string, args ...string) (*Result, error) {
	logger := d.logger.With().Str(logging.FieldContractName, contractName).Logger()

	factory, err := d.provider.GetContractFactory(ctx, contractName)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract factory for %s: %w", contractName, err)
	}

	deployment, err := factory.Deploy(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", contractName, err)
	}
	logger.Info().
		Str(logging.FieldTxHash, deployment.TxHash()).
		Msg("Deployment transaction sent, waiting for confirmation...")

	if err := deployment.Deployed(ctx); err != nil {
		return nil, fmt.Errorf("deployment of %s failed: %w", contractName, err)
	}

	result := &Result{
		ContractName: contractName,
		Address:      deployment.Address(),
		TxHash:       deployment.TxHash(),
	}
	if details, ok := deployment.(deploymentDetails); ok {
		result.ChainId = details.ChainId()
		result.Deployer = details.Deployer()
	}
	logger.Info().Str(logging.FieldContractAddress, result.Address).Msg("Contract deployed")

	if err := d.recorder.Record(ctx, result); err != nil {
		logger.Warn().Err(err).Msg("Failed to record deployment")
	}
	return result, nil
}

// Run deploys the contract, prints the address or the error and returns the process exit code.
func (d *Deployer) Run(ctx context.Context, contractName string, args ...string) int {
	result, err := d.Deploy(ctx, contractName, args...)
	if err != nil {
		_, _ = fmt.Fprintln(d.out, err)
		return ExitFailure
	}

	_, _ = fmt.Fprintln(d.out, "Contract deployed to:", result.Address)
	return ExitSuccess
}

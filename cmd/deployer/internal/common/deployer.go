package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/NilFoundation/deployer/common/logging"
	"github.com/NilFoundation/deployer/internal/artifacts"
	"github.com/NilFoundation/deployer/internal/compiler"
	"github.com/NilFoundation/deployer/internal/deployer"
	"github.com/NilFoundation/deployer/internal/ethclient"
	"github.com/NilFoundation/deployer/internal/records"
	"github.com/jonboulle/clockwork"
)

var ErrRecordsDisabled = errors.New("deployment records are disabled, set \"records_db\" in config")

// NewDeployer builds a deployer talking to the configured node.
// The returned function releases the connection and the records db.
func NewDeployer(ctx context.Context, cfg *Config, out io.Writer) (*deployer.Deployer, func(), error) {
	if err := cfg.ValidateForDeploy(); err != nil {
		return nil, nil, err
	}

	sources, err := newArtifactSources(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := ethclient.NewRetryingEthClient(ctx, cfg.RPCEndpoint, cfg.RequestTimeout, logging.NewLogger("eth_client"))
	if err != nil {
		return nil, nil, err
	}

	clock := clockwork.NewRealClock()
	provider, err := deployer.NewEthFactoryProvider(
		sources, client, cfg.PrivateKey, cfg.ProviderConfig(), clock, logging.NewLogger("provider"))
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	var recorder deployer.Recorder
	closeAll := client.Close
	if cfg.RecordsDb != "" {
		storage, err := OpenRecords(cfg)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		recorder = records.NewRecorder(storage, clock)
		closeAll = func() {
			client.Close()
			if err := storage.Close(); err != nil {
				logger := logging.NewLogger("records")
				logger.Error().Err(err).Msg("Failed to close records db")
			}
		}
	}

	return deployer.NewDeployer(provider, recorder, out, logging.NewLogger("deployer")), closeAll, nil
}

// ProviderConfig converts the transaction options of the config.
func (c *Config) ProviderConfig() deployer.ProviderConfig {
	providerConfig := deployer.NewDefaultProviderConfig()
	if c.ChainId != 0 {
		providerConfig.ChainId = new(big.Int).SetUint64(c.ChainId)
	}
	providerConfig.GasLimit = c.GasLimit
	if c.GasPrice != nil && !c.GasPrice.IsZero() {
		providerConfig.GasPrice = c.GasPrice.ToBig()
	}
	if c.Value != nil && !c.Value.IsZero() {
		providerConfig.Value = c.Value
	}
	if c.ReceiptTimeout > 0 {
		providerConfig.ReceiptTimeout = c.ReceiptTimeout
	}
	if c.ReceiptPollInterval > 0 {
		providerConfig.ReceiptPollInterval = c.ReceiptPollInterval
	}
	return providerConfig
}

func newArtifactSources(cfg *Config) (deployer.ArtifactSources, error) {
	store, err := artifacts.NewStore(ExpandHome(cfg.ArtifactsDir), artifacts.DefaultCacheSize, logging.NewLogger("artifacts"))
	if err != nil {
		return nil, err
	}
	sources := deployer.ArtifactSources{store}

	if cfg.SourcesDir != "" {
		sources = append(sources, compiler.New(compiler.Config{
			SourcesDir:    ExpandHome(cfg.SourcesDir),
			SolcVersion:   cfg.SolcVersion,
			OptimizerRuns: cfg.OptimizerRuns,
		}, logging.NewLogger("compiler")))
	}
	return sources, nil
}

func OpenRecords(cfg *Config) (*records.Storage, error) {
	if cfg.RecordsDb == "" {
		return nil, ErrRecordsDisabled
	}
	storage, err := records.NewStorage(ExpandHome(cfg.RecordsDb), logging.NewLogger("records"))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.RecordsDb, err)
	}
	return storage, nil
}

// ExpandHome replaces the leading "~/" with the home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

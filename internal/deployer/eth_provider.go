package deployer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/NilFoundation/deployer/common"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/NilFoundation/deployer/internal/artifacts"
	"github.com/NilFoundation/deployer/internal/ethclient"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const (
	DefaultReceiptTimeout      = 5 * time.Minute
	DefaultReceiptPollInterval = time.Second
)

// ArtifactSource returns compiled contracts by name.
type ArtifactSource interface {
	Artifact(ctx context.Context, name string) (*artifacts.Artifact, error)
}

type ProviderConfig struct {
	// ChainId is requested from the node when nil.
	ChainId *big.Int
	// GasLimit is estimated when zero.
	GasLimit uint64
	// GasPrice forces a legacy transaction when set.
	GasPrice *big.Int
	Value    *uint256.Int

	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
}

func NewDefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		ReceiptTimeout:      DefaultReceiptTimeout,
		ReceiptPollInterval: DefaultReceiptPollInterval,
	}
}

// EthFactoryProvider deploys contracts to an EVM chain through JSON-RPC.
type EthFactoryProvider struct {
	source ArtifactSource
	client ethclient.EthClient
	signer *ecdsa.PrivateKey
	from   ethcommon.Address
	config ProviderConfig
	clock  clockwork.Clock
	logger zerolog.Logger
}

var _ FactoryProvider = (*EthFactoryProvider)(nil)

func NewEthFactoryProvider(
	source ArtifactSource,
	client ethclient.EthClient,
	signer *ecdsa.PrivateKey,
	config ProviderConfig,
	clock clockwork.Clock,
	logger zerolog.Logger,
) (*EthFactoryProvider, error) {
	if signer == nil {
		return nil, ErrNoSigner
	}
	if config.ReceiptTimeout <= 0 {
		config.ReceiptTimeout = DefaultReceiptTimeout
	}
	if config.ReceiptPollInterval <= 0 {
		config.ReceiptPollInterval = DefaultReceiptPollInterval
	}

	from := crypto.PubkeyToAddress(signer.PublicKey)
	return &EthFactoryProvider{
		source: source,
		client: client,
		signer: signer,
		from:   from,
		config: config,
		clock:  clock,
		logger: logger.With().Str(logging.FieldDeployer, from.Hex()).Logger(),
	}, nil
}

// From returns the address deployments are sent from.
func (p *EthFactoryProvider) From() ethcommon.Address {
	return p.from
}

func (p *EthFactoryProvider) GetContractFactory(ctx context.Context, name string) (ContractFactory, error) {
	artifact, err := p.source.Artifact(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("%s can not be deployed: %w", artifact.FullyQualifiedName(), err)
	}
	contractAbi, err := artifact.ParseAbi()
	if err != nil {
		return nil, err
	}

	chainId := p.config.ChainId
	if chainId == nil {
		chainId, err = p.client.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
	}

	return &ethContractFactory{
		provider: p,
		artifact: artifact,
		abi:      contractAbi,
		chainId:  chainId,
		logger: p.logger.With().
			Str(logging.FieldContractName, artifact.FullyQualifiedName()).
			Stringer(logging.FieldChainId, chainId).
			Logger(),
	}, nil
}

type ethContractFactory struct {
	provider *EthFactoryProvider
	artifact *artifacts.Artifact
	abi      *abi.ABI
	chainId  *big.Int
	logger   zerolog.Logger
}

func (f *ethContractFactory) Deploy(ctx context.Context, args ...string) (Deployment, error) {
	params, err := ParseConstructorArgs(f.abi.Constructor, args)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(f.provider.signer, f.chainId)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.GasLimit = f.provider.config.GasLimit
	opts.GasPrice = f.provider.config.GasPrice
	if f.provider.config.Value != nil {
		opts.Value = f.provider.config.Value.ToBig()
	}

	address, tx, _, err := bind.DeployContract(opts, *f.abi, f.artifact.Bytecode, f.provider.client, params...)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().
		Stringer(logging.FieldTxHash, tx.Hash()).
		Uint64(logging.FieldTxNonce, tx.Nonce()).
		Uint64(logging.FieldGasLimit, tx.Gas()).
		Stringer(logging.FieldContractAddress, address).
		Msg("Deployment transaction sent")

	return &ethDeployment{
		client:  f.provider.client,
		config:  f.provider.config,
		clock:   f.provider.clock,
		tx:      tx,
		address: address,
		chainId: f.chainId.Uint64(),
		from:    f.provider.from,
		logger:  f.logger,
	}, nil
}

type ethDeployment struct {
	client  ethclient.EthClient
	config  ProviderConfig
	clock   clockwork.Clock
	tx      *ethtypes.Transaction
	address ethcommon.Address
	chainId uint64
	from    ethcommon.Address
	logger  zerolog.Logger

	addressMu sync.RWMutex

	// mu serialises confirmations and guards done and err
	mu   sync.Mutex
	done bool
	err  error
}

var _ deploymentDetails = (*ethDeployment)(nil)

// Address does not wait for the confirmation; it is final once Deployed succeeds.
func (d *ethDeployment) Address() string {
	d.addressMu.RLock()
	defer d.addressMu.RUnlock()
	return d.address.Hex()
}

func (d *ethDeployment) TxHash() string {
	return d.tx.Hash().Hex()
}

func (d *ethDeployment) ChainId() uint64 {
	return d.chainId
}

func (d *ethDeployment) Deployer() string {
	return d.from.Hex()
}

// Deployed waits for the receipt and checks that the contract code is in place.
// The outcome is remembered unless the wait was interrupted by ctx.
func (d *ethDeployment) Deployed(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done {
		return d.err
	}
	err := d.confirm(ctx)
	if ctx.Err() == nil {
		d.done = true
		d.err = err
	}
	return err
}

func (d *ethDeployment) confirm(ctx context.Context) error {
	receipt, err := d.waitForReceipt(ctx)
	if err != nil {
		return err
	}
	d.logReceiptDetails(receipt)

	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s", ErrTransactionReverted, d.tx.Hash())
	}
	d.addressMu.Lock()
	if receipt.ContractAddress != (ethcommon.Address{}) && receipt.ContractAddress != d.address {
		d.logger.Warn().
			Stringer(logging.FieldContractAddress, receipt.ContractAddress).
			Msg("Receipt reports a different contract address")
		d.address = receipt.ContractAddress
	}
	address := d.address
	d.addressMu.Unlock()

	code, err := d.client.CodeAt(ctx, address, nil)
	if err != nil {
		return fmt.Errorf("failed to get code at %s: %w", address, err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCodeAfterDeploy, address)
	}
	return nil
}

func (d *ethDeployment) waitForReceipt(ctx context.Context) (*ethtypes.Receipt, error) {
	txHash := d.tx.Hash()
	receipt, err := common.WaitForValue(
		ctx,
		d.clock,
		d.config.ReceiptTimeout,
		d.config.ReceiptPollInterval,
		func(ctx context.Context) (*ethtypes.Receipt, error) {
			receipt, err := d.client.TransactionReceipt(ctx, txHash)
			if errors.Is(err, ethereum.NotFound) {
				return nil, nil
			}
			return receipt, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", txHash, err)
	}
	if receipt == nil {
		return nil, fmt.Errorf("%w: %s not mined within %s", ErrReceiptTimeout, txHash, d.config.ReceiptTimeout)
	}
	return receipt, nil
}

func (d *ethDeployment) logReceiptDetails(receipt *ethtypes.Receipt) {
	d.logger.Info().
		Stringer(logging.FieldTxHash, receipt.TxHash).
		Stringer(logging.FieldBlockHash, receipt.BlockHash).
		Stringer(logging.FieldBlockNumber, receipt.BlockNumber).
		Uint64("status", receipt.Status).
		Uint64("gas_used", receipt.GasUsed).
		Stringer("effective_gas_price", receipt.EffectiveGasPrice).
		Msg("Deployment receipt")
}

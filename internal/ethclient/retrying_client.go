package ethclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/NilFoundation/deployer/common"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const (
	DefaultRequestTimeout = 10 * time.Second

	maxAttempts    = 3
	baseRetryDelay = 500 * time.Millisecond
	maxRetryDelay  = 4 * time.Second
)

// retryingEthClient retries idempotent reads.
// SendTransaction is passed through as is: a deployment must be submitted exactly once.
type retryingEthClient struct {
	client         EthClient
	requestTimeout time.Duration
	retrier        common.RetryRunner
	logger         zerolog.Logger
}

var _ EthClient = (*retryingEthClient)(nil)

func NewRetryingEthClient(
	ctx context.Context,
	endpoint string,
	requestTimeout time.Duration,
	logger zerolog.Logger,
) (EthClient, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	logger.Debug().Str(logging.FieldUrl, endpoint).Msg("connected to RPC endpoint")
	return WrapRetrying(client, requestTimeout, clockwork.NewRealClock(), logger), nil
}

func WrapRetrying(client EthClient, requestTimeout time.Duration, clock clockwork.Clock, logger zerolog.Logger) EthClient {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &retryingEthClient{
		client:         client,
		requestTimeout: requestTimeout,
		retrier: common.NewRetryRunner(
			common.RetryConfig{
				ShouldRetry: shouldRetry,
				NextDelay:   common.ExponentialDelay(baseRetryDelay, maxRetryDelay),
			},
			clock,
			logger,
		),
		logger: logger,
	}
}

func shouldRetry(attemptNumber uint32, err error) bool {
	if errors.Is(err, ethereum.NotFound) ||
		errors.Is(err, context.Canceled) {
		return false
	}
	return common.LimitRetries(maxAttempts)(attemptNumber, err)
}

func retry[T any](ctx context.Context, c *retryingEthClient, method string, call func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := c.retrier.Do(ctx, func(ctx context.Context) error {
		reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()

		var err error
		result, err = call(reqCtx)
		return err
	})
	if err != nil && !errors.Is(err, ethereum.NotFound) {
		c.logger.Debug().Err(err).Str(logging.FieldRpcMethod, method).Msg("RPC request failed")
	}
	return result, err
}

func (c *retryingEthClient) CodeAt(ctx context.Context, contract ethcommon.Address, blockNumber *big.Int) ([]byte, error) {
	return retry(ctx, c, "eth_getCode", func(ctx context.Context) ([]byte, error) {
		return c.client.CodeAt(ctx, contract, blockNumber)
	})
}

func (c *retryingEthClient) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return retry(ctx, c, "eth_call", func(ctx context.Context) ([]byte, error) {
		return c.client.CallContract(ctx, call, blockNumber)
	})
}

func (c *retryingEthClient) HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error) {
	return retry(ctx, c, "eth_getBlockByNumber", func(ctx context.Context) (*ethtypes.Header, error) {
		return c.client.HeaderByNumber(ctx, number)
	})
}

func (c *retryingEthClient) PendingCodeAt(ctx context.Context, account ethcommon.Address) ([]byte, error) {
	return retry(ctx, c, "eth_getCode", func(ctx context.Context) ([]byte, error) {
		return c.client.PendingCodeAt(ctx, account)
	})
}

func (c *retryingEthClient) PendingNonceAt(ctx context.Context, account ethcommon.Address) (uint64, error) {
	return retry(ctx, c, "eth_getTransactionCount", func(ctx context.Context) (uint64, error) {
		return c.client.PendingNonceAt(ctx, account)
	})
}

func (c *retryingEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return retry(ctx, c, "eth_gasPrice", c.client.SuggestGasPrice)
}

func (c *retryingEthClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return retry(ctx, c, "eth_maxPriorityFeePerGas", c.client.SuggestGasTipCap)
}

func (c *retryingEthClient) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return retry(ctx, c, "eth_estimateGas", func(ctx context.Context) (uint64, error) {
		return c.client.EstimateGas(ctx, call)
	})
}

func (c *retryingEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()
	return c.client.SendTransaction(reqCtx, tx)
}

func (c *retryingEthClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]ethtypes.Log, error) {
	return retry(ctx, c, "eth_getLogs", func(ctx context.Context) ([]ethtypes.Log, error) {
		return c.client.FilterLogs(ctx, query)
	})
}

func (c *retryingEthClient) SubscribeFilterLogs(
	ctx context.Context, query ethereum.FilterQuery, ch chan<- ethtypes.Log,
) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

func (c *retryingEthClient) TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error) {
	return retry(ctx, c, "eth_getTransactionReceipt", func(ctx context.Context) (*ethtypes.Receipt, error) {
		return c.client.TransactionReceipt(ctx, txHash)
	})
}

func (c *retryingEthClient) ChainID(ctx context.Context) (*big.Int, error) {
	return retry(ctx, c, "eth_chainId", c.client.ChainID)
}

func (c *retryingEthClient) Close() {
	c.client.Close()
}

package ethclient

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/NilFoundation/deployer/common/logging"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

type RetryingClientTestSuite struct {
	suite.Suite

	ctx    context.Context
	clock  clockwork.FakeClock
	mock   *EthClientMock
	client EthClient
}

func TestRetryingClientSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RetryingClientTestSuite))
}

func (s *RetryingClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clockwork.NewFakeClock()
	s.mock = &EthClientMock{}
	s.client = WrapRetrying(s.mock, time.Second, s.clock, logging.NewLogger("retrying_client_test"))
}

func (s *RetryingClientTestSuite) TestReadIsRetried() {
	attempts := 0
	s.mock.ChainIDFunc = func(ctx context.Context) (*big.Int, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection reset")
		}
		return big.NewInt(1337), nil
	}

	type result struct {
		chainId *big.Int
		err     error
	}
	done := make(chan result, 1)
	go func() {
		chainId, err := s.client.ChainID(s.ctx)
		done <- result{chainId, err}
	}()

	s.clock.BlockUntil(1)
	s.clock.Advance(baseRetryDelay)
	s.clock.BlockUntil(1)
	s.clock.Advance(2 * baseRetryDelay)

	res := <-done
	s.Require().NoError(res.err)
	s.Require().Equal(int64(1337), res.chainId.Int64())
	s.Require().Len(s.mock.ChainIDCalls(), 3)
}

func (s *RetryingClientTestSuite) TestNotFoundIsNotRetried() {
	s.mock.TransactionReceiptFunc = func(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error) {
		return nil, ethereum.NotFound
	}

	receipt, err := s.client.TransactionReceipt(s.ctx, ethcommon.HexToHash("0x01"))
	s.Require().ErrorIs(err, ethereum.NotFound)
	s.Require().Nil(receipt)
	s.Require().Len(s.mock.TransactionReceiptCalls(), 1)
}

func (s *RetryingClientTestSuite) TestSendTransactionIsNotRetried() {
	sendErr := errors.New("nonce too low")
	s.mock.SendTransactionFunc = func(ctx context.Context, tx *ethtypes.Transaction) error {
		return sendErr
	}

	tx := ethtypes.NewTx(&ethtypes.LegacyTx{Nonce: 1})
	err := s.client.SendTransaction(s.ctx, tx)
	s.Require().ErrorIs(err, sendErr)
	s.Require().Len(s.mock.SendTransactionCalls(), 1)
}

func (s *RetryingClientTestSuite) TestRequestTimeoutIsApplied() {
	s.mock.CodeAtFunc = func(ctx context.Context, contract ethcommon.Address, blockNumber *big.Int) ([]byte, error) {
		_, hasDeadline := ctx.Deadline()
		s.True(hasDeadline)
		return []byte{0x60}, nil
	}

	code, err := s.client.CodeAt(s.ctx, ethcommon.HexToAddress("0x02"), nil)
	s.Require().NoError(err)
	s.Require().Equal([]byte{0x60}, code)
}

func (s *RetryingClientTestSuite) TestClose() {
	s.client.Close()
	s.Require().Len(s.mock.CloseCalls(), 1)
}

package deployer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/NilFoundation/deployer/common/logging"
	"github.com/stretchr/testify/suite"
)

type DeployerTestSuite struct {
	suite.Suite

	ctx        context.Context
	out        *bytes.Buffer
	provider   *FactoryProviderMock
	factory    *ContractFactoryMock
	deployment *DeploymentMock
	recorder   *RecorderMock
	deployer   *Deployer
}

func TestDeployerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DeployerTestSuite))
}

func (s *DeployerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.out = new(bytes.Buffer)
	s.deployment = &DeploymentMock{
		AddressFunc: func() string { return "0xABC123" },
		TxHashFunc:  func() string { return "0xfeed" },
	}
	s.factory = &ContractFactoryMock{
		DeployFunc: func(ctx context.Context, args ...string) (Deployment, error) {
			return s.deployment, nil
		},
	}
	s.provider = &FactoryProviderMock{
		GetContractFactoryFunc: func(ctx context.Context, name string) (ContractFactory, error) {
			return s.factory, nil
		},
	}
	s.recorder = &RecorderMock{}
	s.deployer = NewDeployer(s.provider, s.recorder, s.out, logging.NewLogger("deployer_test"))
}

func (s *DeployerTestSuite) TestSuccess() {
	code := s.deployer.Run(s.ctx, "ChainBattles")

	s.Equal(ExitSuccess, code)
	s.Equal("Contract deployed to: 0xABC123\n", s.out.String())

	s.Require().Len(s.provider.GetContractFactoryCalls(), 1)
	s.Equal("ChainBattles", s.provider.GetContractFactoryCalls()[0].Name)
	s.Len(s.factory.DeployCalls(), 1)
	s.Empty(s.factory.DeployCalls()[0].Args)
	s.Len(s.deployment.DeployedCalls(), 1)

	s.Require().Len(s.recorder.RecordCalls(), 1)
	s.Equal(&Result{
		ContractName: "ChainBattles",
		Address:      "0xABC123",
		TxHash:       "0xfeed",
	}, s.recorder.RecordCalls()[0].Result)
}

func (s *DeployerTestSuite) TestConstructorArgsArePassed() {
	result, err := s.deployer.Deploy(s.ctx, "Token", "name", "42")
	s.Require().NoError(err)
	s.Equal("0xABC123", result.Address)

	s.Require().Len(s.factory.DeployCalls(), 1)
	s.Equal([]string{"name", "42"}, s.factory.DeployCalls()[0].Args)
}

func (s *DeployerTestSuite) TestFactoryError() {
	s.provider.GetContractFactoryFunc = func(ctx context.Context, name string) (ContractFactory, error) {
		return nil, errors.New("network unreachable")
	}

	code := s.deployer.Run(s.ctx, "ChainBattles")

	s.Equal(ExitFailure, code)
	s.Contains(s.out.String(), "network unreachable")
	s.NotContains(s.out.String(), "Contract deployed to:")
	s.Len(s.provider.GetContractFactoryCalls(), 1)
	s.Empty(s.factory.DeployCalls())
	s.Empty(s.recorder.RecordCalls())
}

func (s *DeployerTestSuite) TestDeployError() {
	s.factory.DeployFunc = func(ctx context.Context, args ...string) (Deployment, error) {
		return nil, errors.New("insufficient funds for gas")
	}

	code := s.deployer.Run(s.ctx, "ChainBattles")

	s.Equal(ExitFailure, code)
	s.Contains(s.out.String(), "insufficient funds for gas")
	s.Len(s.factory.DeployCalls(), 1)
	s.Empty(s.deployment.DeployedCalls())
	s.Empty(s.recorder.RecordCalls())
}

func (s *DeployerTestSuite) TestConfirmationError() {
	s.deployment.DeployedFunc = func(ctx context.Context) error {
		return errors.New("transaction reverted")
	}

	code := s.deployer.Run(s.ctx, "ChainBattles")

	s.Equal(ExitFailure, code)
	s.Contains(s.out.String(), "transaction reverted")
	s.NotContains(s.out.String(), "0xABC123")
	s.Len(s.factory.DeployCalls(), 1)
	s.Len(s.deployment.DeployedCalls(), 1)
	s.Empty(s.recorder.RecordCalls())
}

func (s *DeployerTestSuite) TestErrorIsWrapped() {
	_, err := s.deployer.Deploy(s.ctx, "ChainBattles")
	s.Require().NoError(err)

	s.deployment.DeployedFunc = func(ctx context.Context) error {
		return ErrTransactionReverted
	}
	_, err = s.deployer.Deploy(s.ctx, "ChainBattles")
	s.Require().ErrorIs(err, ErrTransactionReverted)
	s.Contains(err.Error(), "ChainBattles")
}

func (s *DeployerTestSuite) TestRecorderFailureIsNotFatal() {
	s.recorder.RecordFunc = func(ctx context.Context, result *Result) error {
		return errors.New("disk full")
	}

	code := s.deployer.Run(s.ctx, "ChainBattles")

	s.Equal(ExitSuccess, code)
	s.Equal("Contract deployed to: 0xABC123\n", s.out.String())
	s.Len(s.recorder.RecordCalls(), 1)
}

func (s *DeployerTestSuite) TestNilRecorder() {
	deployer := NewDeployer(s.provider, nil, s.out, logging.NewLogger("deployer_test"))

	code := deployer.Run(s.ctx, "ChainBattles")
	s.Equal(ExitSuccess, code)
	s.Equal("Contract deployed to: 0xABC123\n", s.out.String())
}

func (s *DeployerTestSuite) TestDeploymentDetailsAreRecorded() {
	deployment := &detailedDeployment{DeploymentMock: s.deployment}
	s.factory.DeployFunc = func(ctx context.Context, args ...string) (Deployment, error) {
		return deployment, nil
	}

	result, err := s.deployer.Deploy(s.ctx, "ChainBattles")
	s.Require().NoError(err)
	s.Equal(uint64(1337), result.ChainId)
	s.Equal("0x00000000000000000000000000000000000000aa", result.Deployer)
}

type detailedDeployment struct {
	*DeploymentMock
}

func (d *detailedDeployment) ChainId() uint64 {
	return 1337
}

func (d *detailedDeployment) Deployer() string {
	return "0x00000000000000000000000000000000000000aa"
}

package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type ConfigTestSuite struct {
	suite.Suite

	path string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	viper.Reset()
	SetDefaults()
	BindEnv()

	s.path = filepath.Join(s.T().TempDir(), "config.yaml")
	SetConfigFile(s.path)
}

func (s *ConfigTestSuite) writeConfig(content string) {
	s.Require().NoError(os.WriteFile(s.path, []byte(content), 0o600))
}

func (s *ConfigTestSuite) load() (*Config, bool) {
	cfg := new(Config)
	found, err := LoadConfig(cfg)
	s.Require().NoError(err)
	return cfg, found
}

func (s *ConfigTestSuite) TestDecode() {
	s.writeConfig(`
deployer:
  rpc_endpoint: "http://127.0.0.1:8545"
  private_key: "0x` + testPrivateKey + `"
  contract: "Token"
  sources_dir: "contracts"
  solc_version: "0.8.17"
  optimizer_runs: 200
  chain_id: 80001
  gas_limit: 3000000
  gas_price: "0x6fc23ac00"
  value: 1000
  receipt_timeout: "2m"
  receipt_poll_interval: "500ms"
  records_db: "/tmp/records"
`)

	cfg, found := s.load()
	s.True(found)
	s.Equal("http://127.0.0.1:8545", cfg.RPCEndpoint)
	s.Require().NotNil(cfg.PrivateKey)
	s.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey).Hex())
	s.Equal("Token", cfg.Contract)
	s.Equal("artifacts", cfg.ArtifactsDir)
	s.Equal("contracts", cfg.SourcesDir)
	s.Equal("0.8.17", cfg.SolcVersion)
	s.Equal(uint(200), cfg.OptimizerRuns)
	s.Equal(uint64(80001), cfg.ChainId)
	s.Equal(uint64(3_000_000), cfg.GasLimit)
	s.Equal(uint256.NewInt(30_000_000_000), cfg.GasPrice)
	s.Equal(uint256.NewInt(1000), cfg.Value)
	s.Equal(2*time.Minute, cfg.ReceiptTimeout)
	s.Equal(500*time.Millisecond, cfg.ReceiptPollInterval)
	s.Equal(10*time.Second, cfg.RequestTimeout)
	s.Equal("/tmp/records", cfg.RecordsDb)
	s.Require().NoError(cfg.ValidateForDeploy())

	providerConfig := cfg.ProviderConfig()
	s.Equal(uint64(80001), providerConfig.ChainId.Uint64())
	s.Equal(uint64(3_000_000), providerConfig.GasLimit)
	s.Equal(uint64(30_000_000_000), providerConfig.GasPrice.Uint64())
	s.Equal(uint256.NewInt(1000), providerConfig.Value)
	s.Equal(2*time.Minute, providerConfig.ReceiptTimeout)
}

func (s *ConfigTestSuite) TestMissingFileUsesDefaults() {
	cfg, found := s.load()
	s.False(found)
	s.Equal(DefaultContract, cfg.Contract)
	s.Equal(5*time.Minute, cfg.ReceiptTimeout)
	s.Equal(time.Second, cfg.ReceiptPollInterval)
	s.Nil(cfg.PrivateKey)
	s.ErrorIs(cfg.ValidateForDeploy(), ErrMissingOption)

	providerConfig := cfg.ProviderConfig()
	s.Nil(providerConfig.ChainId)
	s.Nil(providerConfig.GasPrice)
	s.Nil(providerConfig.Value)
}

func (s *ConfigTestSuite) TestEnvironmentOverridesFile() {
	s.writeConfig(`
deployer:
  rpc_endpoint: "http://127.0.0.1:8545"
  contract: "Token"
`)
	s.T().Setenv(EnvName(RPCEndpointField), "http://node:8545")
	s.T().Setenv(EnvName(PrivateKeyField), testPrivateKey)
	s.T().Setenv(EnvName(ChainIdField), "5")

	cfg, _ := s.load()
	s.Equal("http://node:8545", cfg.RPCEndpoint)
	s.NotNil(cfg.PrivateKey)
	s.Equal(uint64(5), cfg.ChainId)
	s.Equal("Token", cfg.Contract)
	s.NoError(cfg.ValidateForDeploy())
}

func (s *ConfigTestSuite) TestInvalidValues() {
	s.writeConfig(`
deployer:
  private_key: "not a key"
`)
	_, err := LoadConfig(new(Config))
	s.Require().ErrorContains(err, "invalid private key")

	s.writeConfig(`
deployer:
  private_key: ""
`)
	_, err = LoadConfig(new(Config))
	s.Require().ErrorContains(err, "private key is empty")

	s.writeConfig(`
deployer:
  value: "-1"
`)
	_, err = LoadConfig(new(Config))
	s.Require().ErrorContains(err, "invalid wei amount")
}

func (s *ConfigTestSuite) TestInitAndPatch() {
	path, err := InitDefaultConfig(s.path)
	s.Require().NoError(err)
	s.Equal(s.path, path)

	_, err = InitDefaultConfig(s.path)
	s.Require().Error(err)

	cfg, found := s.load()
	s.True(found)
	s.Equal(DefaultContract, cfg.Contract)

	s.Require().NoError(PatchConfig(map[string]any{RPCEndpointField: "http://127.0.0.1:8545"}, false))
	s.Require().NoError(PatchConfig(map[string]any{RPCEndpointField: "http://127.0.0.1:8545"}, false))
	s.Require().Error(PatchConfig(map[string]any{RPCEndpointField: "http://other:8545"}, false))
	s.Require().NoError(PatchConfig(map[string]any{ContractField: "Token"}, true))

	viper.Reset()
	SetDefaults()
	SetConfigFile(s.path)
	cfg, _ = s.load()
	s.Equal("http://127.0.0.1:8545", cfg.RPCEndpoint)
	s.Equal("Token", cfg.Contract)
	s.Equal(5*time.Minute, cfg.ReceiptTimeout)
}

func (s *ConfigTestSuite) TestPatchCreatesFile() {
	s.Require().NoError(PatchConfig(map[string]any{GasLimitField: "100000"}, false))

	cfg, found := s.load()
	s.True(found)
	s.Equal(uint64(100_000), cfg.GasLimit)
}

func (s *ConfigTestSuite) TestPatchKeepsEnvironmentOutOfFile() {
	s.T().Setenv(EnvName(PrivateKeyField), testPrivateKey)

	s.Require().NoError(PatchConfig(map[string]any{ContractField: "Token"}, true))

	content, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.NotContains(string(content), testPrivateKey)
}

func (s *ConfigTestSuite) TestTemplateMentionsEveryField() {
	var parsed map[string]map[string]any
	s.Require().NoError(yaml.Unmarshal([]byte(InitConfigTemplate), &parsed))
	s.Require().Contains(parsed, ConfigSection)

	section := parsed[ConfigSection]
	s.Equal(DefaultContract, section[ContractField])
	s.Equal("artifacts", section[ArtifactsDirField])
	s.Equal("5m", section[ReceiptTimeoutField])
	s.NotContains(section, PrivateKeyField)

	for _, field := range Fields {
		s.True(strings.Contains(InitConfigTemplate, field+":"), field)
	}
}

func (s *ConfigTestSuite) TestIsKnownField() {
	for _, field := range Fields {
		s.True(IsKnownField(field), field)
	}
	s.False(IsKnownField("deployer"))
	s.False(IsKnownField("RPC_ENDPOINT"))
}

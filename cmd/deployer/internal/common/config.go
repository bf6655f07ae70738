package common

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NilFoundation/deployer/common/check"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"
	"github.com/spf13/viper"
)

// ConfigSection is the top-level key all options live under.
const ConfigSection = "deployer"

const (
	RPCEndpointField         = "rpc_endpoint"
	PrivateKeyField          = "private_key"
	ContractField            = "contract"
	ArtifactsDirField        = "artifacts_dir"
	SourcesDirField          = "sources_dir"
	SolcVersionField         = "solc_version"
	OptimizerRunsField       = "optimizer_runs"
	ChainIdField             = "chain_id"
	GasLimitField            = "gas_limit"
	GasPriceField            = "gas_price"
	ValueField               = "value"
	ReceiptTimeoutField      = "receipt_timeout"
	ReceiptPollIntervalField = "receipt_poll_interval"
	RequestTimeoutField      = "request_timeout"
	RecordsDbField           = "records_db"
)

// Fields lists every option understood in the config file.
var Fields = []string{
	RPCEndpointField,
	PrivateKeyField,
	ContractField,
	ArtifactsDirField,
	SourcesDirField,
	SolcVersionField,
	OptimizerRunsField,
	ChainIdField,
	GasLimitField,
	GasPriceField,
	ValueField,
	ReceiptTimeoutField,
	ReceiptPollIntervalField,
	RequestTimeoutField,
	RecordsDbField,
}

var knownFields = mapset.NewSet(Fields...)

// IsKnownField reports whether the config file understands the option.
func IsKnownField(field string) bool {
	return knownFields.Contains(field)
}

const DefaultContract = "ChainBattles"

var ErrMissingOption = errors.New("option is missing in config")

type Config struct {
	RPCEndpoint   string            `mapstructure:"rpc_endpoint"`
	PrivateKey    *ecdsa.PrivateKey `mapstructure:"private_key"`
	Contract      string            `mapstructure:"contract"`
	ArtifactsDir  string            `mapstructure:"artifacts_dir"`
	SourcesDir    string            `mapstructure:"sources_dir"`
	SolcVersion   string            `mapstructure:"solc_version"`
	OptimizerRuns uint              `mapstructure:"optimizer_runs"`

	// ChainId is requested from the node when zero.
	ChainId  uint64       `mapstructure:"chain_id"`
	GasLimit uint64       `mapstructure:"gas_limit"`
	GasPrice *uint256.Int `mapstructure:"gas_price"`
	Value    *uint256.Int `mapstructure:"value"`

	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`

	// RecordsDb enables deployment records when set.
	RecordsDb string `mapstructure:"records_db"`
}

// fileConfig is the layout of the config file.
type fileConfig struct {
	Deployer Config `mapstructure:"deployer"`
}

const InitConfigTemplate = `---
# Configuration of the contract deployer
deployer:
  # RPC endpoint of the EVM node
  # rpc_endpoint: "http://127.0.0.1:8545"

  # Hex encoded private key of the deploying account
  # private_key: "WRITE_YOUR_PRIVATE_KEY_HERE"

  # Contract deployed when no contract is given on the command line
  contract: "ChainBattles"

  # Hardhat or Foundry output directory
  artifacts_dir: "artifacts"

  # Solidity sources compiled when the contract is not found among the artifacts.
  # solc_version is installed on demand; solc from PATH is used when it is empty.
  # sources_dir: "contracts"
  # solc_version: "0.8.17"
  # optimizer_runs: 200

  # Transaction parameters. Gas limit is estimated and chain id is requested from the node when not set.
  # chain_id: 80001
  # gas_limit: 3000000
  # gas_price: "30000000000"
  # value: "0"

  receipt_timeout: "5m"
  receipt_poll_interval: "1s"
  request_timeout: "10s"

  # Badger directory keeping the history of deployments
  # records_db: "~/.local/share/deployer/records"
`

var DefaultConfigPath string

func init() {
	homeDir, err := os.UserHomeDir()
	check.PanicIfErr(err)

	DefaultConfigPath = filepath.Join(homeDir, ".config/deployer/config.yaml")
}

// SetDefaults registers the values used when neither the config file nor the environment set an option.
func SetDefaults() {
	viper.SetDefault(ConfigSection+"."+ContractField, DefaultContract)
	viper.SetDefault(ConfigSection+"."+ArtifactsDirField, "artifacts")
	viper.SetDefault(ConfigSection+"."+ReceiptTimeoutField, "5m")
	viper.SetDefault(ConfigSection+"."+ReceiptPollIntervalField, "1s")
	viper.SetDefault(ConfigSection+"."+RequestTimeoutField, "10s")
}

// BindEnv makes every option overridable by DEPLOYER_<OPTION>.
func BindEnv() {
	for _, field := range Fields {
		check.PanicIfErr(viper.BindEnv(ConfigSection+"."+field, EnvName(field)))
	}
}

func EnvName(field string) string {
	return strings.ToUpper(ConfigSection + "_" + field)
}

// LoadConfig reads the config file (if any) with defaults and environment applied.
func LoadConfig(cfg *Config) (bool, error) {
	fileFound := true
	if err := viper.ReadInConfig(); err != nil {
		if !errors.As(err, new(viper.ConfigFileNotFoundError)) && !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("failed to read config file: %w", err)
		}
		fileFound = false
	}

	var file fileConfig
	if err := viper.Unmarshal(&file, UpdateDecoderConfig); err != nil {
		return fileFound, fmt.Errorf("unable to decode config: %w", err)
	}
	*cfg = file.Deployer
	return fileFound, nil
}

// ValidateForDeploy checks the options a deployment can not do without.
func (c *Config) ValidateForDeploy() error {
	if c.RPCEndpoint == "" {
		return fmt.Errorf("%w: %q", ErrMissingOption, RPCEndpointField)
	}
	if c.PrivateKey == nil {
		return fmt.Errorf("%w: %q", ErrMissingOption, PrivateKeyField)
	}
	return nil
}

func InitDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.WriteString(InitConfigTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}

// PatchConfig writes options into the config file, creating it from the template when needed.
// Without force, an option that is already set to another value is an error.
func PatchConfig(delta map[string]any, force bool) error {
	configPath := viper.ConfigFileUsed()
	check.PanicIfNot(configPath != "")

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_, err = InitDefaultConfig(configPath)
		}
		if err != nil {
			return err
		}
	}

	// a separate instance keeps defaults and environment out of the file
	file := viper.New()
	file.SetConfigType("yaml")
	file.SetConfigFile(configPath)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	for key, value := range delta {
		fullKey := ConfigSection + "." + key
		oldValue := file.GetString(fullKey)
		if !force && oldValue != "" && oldValue != fmt.Sprint(value) {
			return fmt.Errorf("key %q already exists in the config file", key)
		}
		file.Set(fullKey, value)
		viper.Set(fullKey, value)
	}
	return file.WriteConfigAs(configPath)
}

// SetConfigFile sets the config file for the viper
func SetConfigFile(cfgFile string) {
	if cfgFile == "" {
		cfgFile = DefaultConfigPath
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(cfgFile)
}

package deploy

import (
	"time"

	"github.com/NilFoundation/deployer/cmd/deployer/internal/common"
)

const (
	artifactsDirFlag   = "artifacts"
	chainIdFlag        = "chain-id"
	gasLimitFlag       = "gas-limit"
	gasPriceFlag       = "gas-price"
	receiptTimeoutFlag = "receipt-timeout"
	sourcesDirFlag     = "sources"
	valueFlag          = "value"
)

var params = &deployParams{}

type deployParams struct {
	artifactsDir   string
	sourcesDir     string
	chainId        uint64
	gasLimit       uint64
	gasPrice       common.WeiValue
	value          common.WeiValue
	receiptTimeout time.Duration
}

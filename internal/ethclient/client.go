package ethclient

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

//go:generate go tool moq -out eth_client_generated_mock.go -rm -stub -with-resets . EthClient

// EthClient is the JSON-RPC surface needed to deploy a contract and wait for it.
type EthClient interface {
	bind.ContractBackend
	bind.DeployBackend

	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

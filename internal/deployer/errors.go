package deployer

import "errors"

var (
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrReceiptTimeout      = errors.New("timed out waiting for deployment receipt")
	ErrNoCodeAfterDeploy   = errors.New("no contract code after deployment")
	ErrArgumentCount       = errors.New("wrong number of constructor arguments")
	ErrInvalidArgument     = errors.New("invalid constructor argument")
	ErrNoSigner            = errors.New("private key is not set")
)

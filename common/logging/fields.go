package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldChainId   = "chainId"

	FieldDuration = "duration"
	FieldUrl      = "url"
	FieldAttempt  = "attempt"

	FieldRpcMethod = "rpcMethod"

	FieldContractName    = "contract"
	FieldContractAddress = "contractAddress"
	FieldDeployer        = "deployer"
	FieldArtifactPath    = "artifactPath"
	FieldSolcVersion     = "solcVersion"

	FieldTxHash      = "txHash"
	FieldTxNonce     = "txNonce"
	FieldGasLimit    = "gasLimit"
	FieldBlockHash   = "blockHash"
	FieldBlockNumber = "blockNumber"

	FieldRecordId = "recordId"
)

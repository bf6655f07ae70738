package compiler

import "encoding/json"

// solc --standard-json input, see https://docs.soliditylang.org/en/latest/using-the-compiler.html
type standardJsonInput struct {
	Language string                        `json:"language"`
	Sources  map[string]standardJsonSource `json:"sources"`
	Settings standardJsonSettings          `json:"settings"`
}

type standardJsonSource struct {
	Content string `json:"content"`
}

type standardJsonSettings struct {
	Optimizer       optimizerSettings              `json:"optimizer"`
	EvmVersion      string                         `json:"evmVersion,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type optimizerSettings struct {
	Enabled bool `json:"enabled"`
	Runs    uint `json:"runs,omitempty"`
}

type standardJsonOutput struct {
	Errors    []compilerMessage                                `json:"errors,omitempty"`
	Contracts map[string]map[string]standardJsonOutputContract `json:"contracts"`
}

type compilerMessage struct {
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	FormattedMessage string `json:"formattedMessage"`
}

type standardJsonOutputContract struct {
	Abi json.RawMessage `json:"abi"`
	Evm struct {
		Bytecode struct {
			Object         string         `json:"object"`
			LinkReferences map[string]any `json:"linkReferences"`
		} `json:"bytecode"`
		DeployedBytecode struct {
			Object string `json:"object"`
		} `json:"deployedBytecode"`
	} `json:"evm"`
}

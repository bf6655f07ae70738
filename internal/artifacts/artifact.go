package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	jsoniter "github.com/json-iterator/go"
)

// Bytecode is contract code as stored in an artifact.
// Hardhat stores it as a hex string, Foundry as {"object": "0x..."}.
type Bytecode []byte

// bytecodeText extracts the hex text of a Hardhat or Foundry bytecode field.
func bytecodeText(raw jsoniter.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var hex string
	if err := jsoniter.Unmarshal(raw, &hex); err == nil {
		return hex, nil
	}
	var foundry struct {
		Object string `json:"object"`
	}
	if err := jsoniter.Unmarshal(raw, &foundry); err != nil {
		return "", fmt.Errorf("%w: bytecode is neither a string nor an object", ErrInvalidArtifact)
	}
	return foundry.Object, nil
}

// ParseBytecode decodes hex code with or without the 0x prefix.
func ParseBytecode(hex string) (Bytecode, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "0x")
	if strings.Contains(hex, "__") {
		// solc leaves __$<hash>$__ placeholders for libraries that are not linked yet
		return nil, ErrUnlinkedLibraries
	}
	if hex == "" {
		return nil, nil
	}
	code, err := hexutil.Decode("0x" + hex)
	if err != nil {
		return nil, fmt.Errorf("%w: bad bytecode: %w", ErrInvalidArtifact, err)
	}
	return code, nil
}

func (b Bytecode) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(b))
}

// Artifact is a compiled contract ready for deployment.
type Artifact struct {
	Format           string          `json:"_format,omitempty"`
	ContractName     string          `json:"contractName"`
	SourceName       string          `json:"sourceName"`
	Abi              json.RawMessage `json:"abi"`
	Bytecode         Bytecode        `json:"bytecode"`
	DeployedBytecode Bytecode        `json:"deployedBytecode"`
	LinkReferences   map[string]any  `json:"linkReferences,omitempty"`

	// Unlinked is set when the code still holds library placeholders.
	Unlinked bool `json:"-"`
}

// SetCode decodes the creation and runtime code. Library placeholders do not fail
// the call; they mark the artifact as unlinked so that Validate rejects it.
func (a *Artifact) SetCode(code, deployedCode string) error {
	var err error
	if a.Bytecode, err = a.parseCode(code); err != nil {
		return fmt.Errorf("%s: bytecode: %w", a.FullyQualifiedName(), err)
	}
	if a.DeployedBytecode, err = a.parseCode(deployedCode); err != nil {
		return fmt.Errorf("%s: deployed bytecode: %w", a.FullyQualifiedName(), err)
	}
	return nil
}

func (a *Artifact) parseCode(hex string) (Bytecode, error) {
	code, err := ParseBytecode(hex)
	if errors.Is(err, ErrUnlinkedLibraries) {
		a.Unlinked = true
		return nil, nil
	}
	return code, err
}

// FullyQualifiedName returns "<source>:<contract>", the unambiguous artifact name.
func (a *Artifact) FullyQualifiedName() string {
	if a.SourceName == "" {
		return a.ContractName
	}
	return a.SourceName + ":" + a.ContractName
}

func (a *Artifact) ParseAbi() (*abi.ABI, error) {
	if len(a.Abi) == 0 {
		return nil, fmt.Errorf("%w: %s has no ABI", ErrInvalidArtifact, a.ContractName)
	}
	parsed, err := abi.JSON(bytes.NewReader(a.Abi))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", a.ContractName, err)
	}
	return &parsed, nil
}

// Validate checks that the artifact can be deployed as is.
func (a *Artifact) Validate() error {
	if a.Unlinked || len(a.LinkReferences) != 0 {
		return fmt.Errorf("%w: %s", ErrUnlinkedLibraries, a.FullyQualifiedName())
	}
	if len(a.Bytecode) == 0 {
		return fmt.Errorf("%w: %s", ErrNoBytecode, a.FullyQualifiedName())
	}
	return nil
}

// artifactFile is the on-disk layout; code fields stay raw until SetCode.
type artifactFile struct {
	Format           string              `json:"_format"`
	ContractName     string              `json:"contractName"`
	SourceName       string              `json:"sourceName"`
	Abi              jsoniter.RawMessage `json:"abi"`
	Bytecode         jsoniter.RawMessage `json:"bytecode"`
	DeployedBytecode jsoniter.RawMessage `json:"deployedBytecode"`
	LinkReferences   map[string]any      `json:"linkReferences"`
}

func ParseArtifact(data []byte) (*Artifact, error) {
	var file artifactFile
	if err := jsoniter.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	artifact := &Artifact{
		Format:         file.Format,
		ContractName:   file.ContractName,
		SourceName:     file.SourceName,
		Abi:            json.RawMessage(file.Abi),
		LinkReferences: file.LinkReferences,
	}
	code, err := bytecodeText(file.Bytecode)
	if err != nil {
		return nil, err
	}
	deployedCode, err := bytecodeText(file.DeployedBytecode)
	if err != nil {
		return nil, err
	}
	if err := artifact.SetCode(code, deployedCode); err != nil {
		return nil, err
	}
	return artifact, nil
}

package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/NilFoundation/deployer/internal/artifacts"
	"github.com/ethereum/go-ethereum/common/compiler"
	"github.com/fabelx/go-solc-select/pkg/config"
	"github.com/fabelx/go-solc-select/pkg/installer"
	"github.com/fabelx/go-solc-select/pkg/versions"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

const (
	DefaultSourcesDir = "contracts"

	nodeModulesDir = "node_modules"
	solidityExt    = ".sol"
)

var (
	ErrCompilationFailed  = errors.New("compilation failed")
	ErrInvalidSolcVersion = errors.New("invalid solc version")
)

var (
	minStandardJsonVersion = semver.MustParse("0.4.11")
	minIncludePathVersion  = semver.MustParse("0.8.8")
)

type Config struct {
	// SourcesDir is the directory with *.sol files. Its parent is used as the solc base path.
	SourcesDir string
	// SolcVersion pins the compiler; it is installed on demand.
	// If empty, solc from PATH is used.
	SolcVersion string
	// OptimizerRuns enables the optimizer when positive.
	OptimizerRuns uint
}

type (
	solcLocator func(version string) (string, error)
	solcRunner  func(ctx context.Context, solc string, args []string, stdin []byte) ([]byte, error)
)

// Compiler builds artifacts from Solidity sources.
// Sources are compiled once; subsequent lookups use the cached output.
type Compiler struct {
	config Config
	logger zerolog.Logger

	locate solcLocator
	run    solcRunner

	mu       sync.Mutex
	compiled map[string]*artifacts.Artifact
}

func New(cfg Config, logger zerolog.Logger) *Compiler {
	if cfg.SourcesDir == "" {
		cfg.SourcesDir = DefaultSourcesDir
	}
	return &Compiler{
		config: cfg,
		logger: logger,
		locate: findCompiler,
		run:    runSolc,
	}
}

// Artifact compiles the sources (on first use) and returns the contract by bare or fully qualified name.
func (c *Compiler) Artifact(ctx context.Context, name string) (*artifacts.Artifact, error) {
	compiled, err := c.compile(ctx)
	if err != nil {
		return nil, err
	}
	return selectArtifact(compiled, name)
}

func (c *Compiler) compile(ctx context.Context) (map[string]*artifacts.Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.compiled != nil {
		return c.compiled, nil
	}

	version, err := c.solcVersion()
	if err != nil {
		return nil, err
	}

	sources, err := c.collectSources()
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str(logging.FieldSolcVersion, c.config.SolcVersion).
		Int("sources", len(sources)).
		Msg("Start contract compiling...")

	var compiled map[string]*artifacts.Artifact
	if version == nil {
		compiled, err = c.compileCombinedJson(ctx, sources)
	} else {
		compiled, err = c.compileStandardJson(ctx, version, sources)
	}
	if err != nil {
		return nil, err
	}

	c.logger.Info().Int("contracts", len(compiled)).Msg("Compilation finished")
	c.compiled = compiled
	return compiled, nil
}

// solcVersion parses the pinned version; nil means solc from PATH.
func (c *Compiler) solcVersion() (*semver.Version, error) {
	if c.config.SolcVersion == "" {
		return nil, nil
	}
	version, err := semver.StrictNewVersion(strings.TrimPrefix(c.config.SolcVersion, "v"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSolcVersion, c.config.SolcVersion, err)
	}
	if version.LessThan(minStandardJsonVersion) {
		return nil, fmt.Errorf("%w %q: standard JSON input requires solc %s or newer",
			ErrInvalidSolcVersion, c.config.SolcVersion, minStandardJsonVersion)
	}
	return version, nil
}

func (c *Compiler) basePath() string {
	return filepath.Dir(filepath.Clean(c.config.SourcesDir))
}

// collectSources returns source unit names (slash separated, relative to the base path) mapped to file paths.
func (c *Compiler) collectSources() (map[string]string, error) {
	base := c.basePath()
	sources := make(map[string]string)
	err := filepath.WalkDir(c.config.SourcesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != solidityExt {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		sources[filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect sources in %s: %w", c.config.SourcesDir, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", solidityExt, c.config.SourcesDir)
	}
	return sources, nil
}

// pathArgs makes imports resolvable; version is nil for solc from PATH.
func (c *Compiler) pathArgs(version *semver.Version) []string {
	base := c.basePath()
	args := []string{"--base-path", base}
	if version != nil && version.LessThan(minIncludePathVersion) {
		return args
	}
	nodeModules := filepath.Join(base, nodeModulesDir)
	if info, err := os.Stat(nodeModules); err == nil && info.IsDir() {
		args = append(args, "--include-path", nodeModules)
	}
	return args
}

func (c *Compiler) compileStandardJson(
	ctx context.Context,
	version *semver.Version,
	sources map[string]string,
) (map[string]*artifacts.Artifact, error) {
	solc, err := c.locate(version.String())
	if err != nil {
		return nil, err
	}

	input, err := c.standardJsonInput(sources)
	if err != nil {
		return nil, err
	}
	inputJson, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compiler input: %w", err)
	}

	args := append([]string{"--standard-json"}, c.pathArgs(version)...)
	output, err := c.run(ctx, solc, args, inputJson)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompilationFailed, err)
	}
	return parseStandardJsonOutput(output)
}

func (c *Compiler) standardJsonInput(sources map[string]string) (*standardJsonInput, error) {
	input := &standardJsonInput{
		Language: "Solidity",
		Sources:  make(map[string]standardJsonSource, len(sources)),
		Settings: standardJsonSettings{
			Optimizer: optimizerSettings{
				Enabled: c.config.OptimizerRuns > 0,
				Runs:    c.config.OptimizerRuns,
			},
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"abi", "evm.bytecode.object", "evm.bytecode.linkReferences", "evm.deployedBytecode.object"}},
			},
		},
	}
	for unit, path := range sources {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
		}
		input.Sources[unit] = standardJsonSource{Content: string(content)}
	}
	return input, nil
}

func parseStandardJsonOutput(output []byte) (map[string]*artifacts.Artifact, error) {
	var outputJson standardJsonOutput
	if err := jsoniter.Unmarshal(output, &outputJson); err != nil {
		return nil, fmt.Errorf("failed to unmarshal compiler output: %w", err)
	}
	for _, msg := range outputJson.Errors {
		if msg.Severity == "error" {
			return nil, fmt.Errorf("%w: %s", ErrCompilationFailed, strings.TrimSpace(msg.FormattedMessage))
		}
	}

	compiled := make(map[string]*artifacts.Artifact)
	for sourceName, contracts := range outputJson.Contracts {
		for contractName, contract := range contracts {
			artifact := &artifacts.Artifact{
				ContractName:   contractName,
				SourceName:     sourceName,
				Abi:            contract.Abi,
				LinkReferences: contract.Evm.Bytecode.LinkReferences,
			}
			if err := artifact.SetCode(contract.Evm.Bytecode.Object, contract.Evm.DeployedBytecode.Object); err != nil {
				return nil, err
			}
			compiled[artifact.FullyQualifiedName()] = artifact
		}
	}
	return compiled, nil
}

func (c *Compiler) compileCombinedJson(ctx context.Context, sources map[string]string) (map[string]*artifacts.Artifact, error) {
	solc, err := c.locate("")
	if err != nil {
		return nil, err
	}

	units := make([]string, 0, len(sources))
	for unit := range sources {
		units = append(units, unit)
	}
	sort.Strings(units)
	paths := make([]string, 0, len(units))
	for _, unit := range units {
		paths = append(paths, sources[unit])
	}

	args := []string{"--combined-json", "abi,bin,bin-runtime"}
	if c.config.OptimizerRuns > 0 {
		args = append(args, "--optimize", "--optimize-runs", fmt.Sprint(c.config.OptimizerRuns))
	}
	args = append(args, c.pathArgs(nil)...)
	args = append(args, paths...)

	output, err := c.run(ctx, solc, args, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompilationFailed, err)
	}
	return parseCombinedJsonOutput(output)
}

func parseCombinedJsonOutput(output []byte) (map[string]*artifacts.Artifact, error) {
	// Provide empty strings for the additional required arguments
	contracts, err := compiler.ParseCombinedJSON(output, "" /*source*/, "" /*langVersion*/, "" /*compilerVersion*/, "" /*compilerOpts*/)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solc output: %w", err)
	}

	compiled := make(map[string]*artifacts.Artifact, len(contracts))
	for name, contract := range contracts {
		sourceName, contractName := "", name
		if i := strings.LastIndex(name, ":"); i >= 0 {
			sourceName, contractName = name[:i], name[i+1:]
		}

		abiJson, err := json.Marshal(contract.Info.AbiDefinition)
		if err != nil {
			return nil, fmt.Errorf("failed to extract abi of %s: %w", name, err)
		}
		artifact := &artifacts.Artifact{
			ContractName: contractName,
			SourceName:   sourceName,
			Abi:          abiJson,
		}
		if err := artifact.SetCode(contract.Code, contract.RuntimeCode); err != nil {
			return nil, err
		}
		compiled[artifact.FullyQualifiedName()] = artifact
	}
	return compiled, nil
}

func selectArtifact(compiled map[string]*artifacts.Artifact, name string) (*artifacts.Artifact, error) {
	if artifact, ok := compiled[name]; ok {
		return artifact, nil
	}

	var candidates []string
	for fqn, artifact := range compiled {
		if artifact.ContractName == name {
			candidates = append(candidates, fqn)
		}
	}
	sort.Strings(candidates)

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %q is not among compiled contracts", artifacts.ErrArtifactNotFound, name)
	case 1:
		return compiled[candidates[0]], nil
	default:
		return nil, fmt.Errorf("%w for %q, use a fully qualified name: %s",
			artifacts.ErrAmbiguousArtifact, name, strings.Join(candidates, ", "))
	}
}

func runSolc(ctx context.Context, solc string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, solc, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to execute `%s`: %w: %s", cmd, err, strings.TrimSpace(stderr.String()))
	}
	return output, nil
}

func findCompiler(version string) (string, error) {
	if version == "" {
		solc, err := exec.LookPath("solc")
		if err != nil {
			return "", fmt.Errorf("solc compiler not found: %w", err)
		}
		return solc, nil
	}

	installed := versions.GetInstalled()
	_, ok := installed[version]
	if !ok {
		if err := installer.InstallSolc(version); err != nil {
			return "", fmt.Errorf("failed to install compiler %s: %w", version, err)
		}
	}
	solc, ok := versions.GetInstalled()[version]
	if !ok {
		return "", fmt.Errorf("failed to find compiler %s", version)
	}
	solc = "solc-" + solc

	fileName := filepath.Join(config.SolcArtifacts, solc, solc)
	if _, err := os.Stat(fileName); err != nil {
		return "", fmt.Errorf("failed to find compiler %s: %w", version, err)
	}
	return fileName, nil
}

package compiler

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/deployer/common/logging"
	"github.com/NilFoundation/deployer/internal/artifacts"
	"github.com/stretchr/testify/suite"
)

const (
	chainBattlesSource = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.10;

contract ChainBattles {}
`

	standardJsonOutputFixture = `{
  "errors": [
    {"severity": "warning", "message": "unused variable", "formattedMessage": "Warning: unused variable"}
  ],
  "contracts": {
    "contracts/ChainBattles.sol": {
      "ChainBattles": {
        "abi": [{"inputs": [], "stateMutability": "nonpayable", "type": "constructor"}],
        "evm": {
          "bytecode": {"object": "600a600c600039600a6000f3602a60005260206000f3", "linkReferences": {}},
          "deployedBytecode": {"object": "602a60005260206000f3"}
        }
      }
    },
    "contracts/Token.sol": {
      "Token": {
        "abi": [],
        "evm": {
          "bytecode": {"object": "6001600055", "linkReferences": {}},
          "deployedBytecode": {"object": ""}
        }
      }
    },
    "contracts/Uses.sol": {
      "Uses": {
        "abi": [],
        "evm": {
          "bytecode": {
            "object": "6080__$0b2a0d3e5a1f8fe71c4c20c6e8ea8b9e1e$__6000",
            "linkReferences": {"contracts/Lib.sol": {"Lib": [{"start": 2, "length": 20}]}}
          },
          "deployedBytecode": {"object": ""}
        }
      }
    },
    "contracts/legacy/Token.sol": {
      "Token": {
        "abi": [],
        "evm": {
          "bytecode": {"object": "6002600055", "linkReferences": {}},
          "deployedBytecode": {"object": ""}
        }
      }
    }
  }
}`

	combinedJsonOutputFixture = `{
  "contracts": {
    "contracts/ChainBattles.sol:ChainBattles": {
      "abi": [{"inputs": [], "stateMutability": "nonpayable", "type": "constructor"}],
      "bin": "600a600c600039600a6000f3602a60005260206000f3",
      "bin-runtime": "602a60005260206000f3"
    },
    "contracts/Uses.sol:Uses": {
      "abi": [],
      "bin": "6080__$0b2a0d3e5a1f8fe71c4c20c6e8ea8b9e1e$__6000",
      "bin-runtime": "6080__$0b2a0d3e5a1f8fe71c4c20c6e8ea8b9e1e$__"
    }
  },
  "version": "0.8.17+commit.8df45f5f.Linux.g++"
}`
)

type CompilerTestSuite struct {
	suite.Suite

	ctx        context.Context
	projectDir string
	sourcesDir string

	runCalls int
	lastArgs []string
	lastIn   []byte
	output   []byte
	runErr   error
}

func TestCompilerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CompilerTestSuite))
}

func (s *CompilerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.projectDir = s.T().TempDir()
	s.sourcesDir = filepath.Join(s.projectDir, DefaultSourcesDir)
	s.Require().NoError(os.MkdirAll(s.sourcesDir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.sourcesDir, "ChainBattles.sol"), []byte(chainBattlesSource), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(s.sourcesDir, "README.md"), []byte("not a source"), 0o600))

	s.runCalls = 0
	s.lastArgs = nil
	s.lastIn = nil
	s.output = nil
	s.runErr = nil
}

func (s *CompilerTestSuite) newCompiler(version string) *Compiler {
	c := New(Config{SourcesDir: s.sourcesDir, SolcVersion: version, OptimizerRuns: 200}, logging.NewLogger("compiler_test"))
	c.locate = func(v string) (string, error) {
		s.Equal(version, v)
		return "/opt/solc", nil
	}
	c.run = func(_ context.Context, solc string, args []string, stdin []byte) ([]byte, error) {
		s.Equal("/opt/solc", solc)
		s.runCalls++
		s.lastArgs = args
		s.lastIn = stdin
		return s.output, s.runErr
	}
	return c
}

func (s *CompilerTestSuite) TestStandardJson() {
	s.output = []byte(standardJsonOutputFixture)
	c := s.newCompiler("0.8.17")

	artifact, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().NoError(err)
	s.Equal("contracts/ChainBattles.sol:ChainBattles", artifact.FullyQualifiedName())
	s.Len(artifact.Bytecode, 22)
	s.Len(artifact.DeployedBytecode, 10)
	s.Require().NoError(artifact.Validate())

	s.Require().Contains(s.lastArgs, "--standard-json")
	s.Require().Contains(s.lastArgs, "--base-path")
	s.Require().NotContains(s.lastArgs, "--include-path")

	var input standardJsonInput
	s.Require().NoError(json.Unmarshal(s.lastIn, &input))
	s.Equal("Solidity", input.Language)
	s.Require().Len(input.Sources, 1)
	s.Equal(chainBattlesSource, input.Sources["contracts/ChainBattles.sol"].Content)
	s.True(input.Settings.Optimizer.Enabled)
	s.Equal(uint(200), input.Settings.Optimizer.Runs)

	// second lookup is served from the compiled output
	_, err = c.Artifact(s.ctx, "contracts/Token.sol:Token")
	s.Require().NoError(err)
	s.Equal(1, s.runCalls)
}

func (s *CompilerTestSuite) TestIncludePathForNodeModules() {
	s.Require().NoError(os.MkdirAll(filepath.Join(s.projectDir, nodeModulesDir, "@openzeppelin"), 0o755))
	s.output = []byte(standardJsonOutputFixture)
	c := s.newCompiler("0.8.17")

	_, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().NoError(err)
	s.Require().Contains(s.lastArgs, "--include-path")
	s.Require().Contains(s.lastArgs, filepath.Join(s.projectDir, nodeModulesDir))
}

func (s *CompilerTestSuite) TestAmbiguousAndMissing() {
	s.output = []byte(standardJsonOutputFixture)
	c := s.newCompiler("0.8.17")

	_, err := c.Artifact(s.ctx, "Token")
	s.Require().ErrorIs(err, artifacts.ErrAmbiguousArtifact)

	_, err = c.Artifact(s.ctx, "Missing")
	s.Require().ErrorIs(err, artifacts.ErrArtifactNotFound)
}

func (s *CompilerTestSuite) TestCompilationErrors() {
	s.output = []byte(`{"errors": [{"severity": "error", "formattedMessage": "ParserError: Expected ';'"}]}`)
	c := s.newCompiler("0.8.17")

	_, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().ErrorIs(err, ErrCompilationFailed)
	s.Contains(err.Error(), "ParserError: Expected ';'")

	s.runErr = errors.New("exit status 1")
	_, err = c.Artifact(s.ctx, "ChainBattles")
	s.Require().ErrorIs(err, ErrCompilationFailed)
	s.Equal(2, s.runCalls)
}

func (s *CompilerTestSuite) TestCombinedJson() {
	s.output = []byte(combinedJsonOutputFixture)
	c := s.newCompiler("")

	artifact, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().NoError(err)
	s.Equal("contracts/ChainBattles.sol", artifact.SourceName)
	s.Len(artifact.Bytecode, 22)

	parsed, err := artifact.ParseAbi()
	s.Require().NoError(err)
	s.Empty(parsed.Constructor.Inputs)

	s.Equal([]string{"--combined-json", "abi,bin,bin-runtime", "--optimize", "--optimize-runs", "200"}, s.lastArgs[:5])
	s.Equal(filepath.Join(s.sourcesDir, "ChainBattles.sol"), s.lastArgs[len(s.lastArgs)-1])
	s.Nil(s.lastIn)
	s.Require().NoError(artifact.Validate())

	// a contract that needs linking does not break the rest of the project
	uses, err := c.Artifact(s.ctx, "Uses")
	s.Require().NoError(err)
	s.True(uses.Unlinked)
	s.Require().ErrorIs(uses.Validate(), artifacts.ErrUnlinkedLibraries)
	s.Equal(1, s.runCalls)
}

func (s *CompilerTestSuite) TestStandardJsonUnlinkedContract() {
	s.output = []byte(standardJsonOutputFixture)
	c := s.newCompiler("0.8.17")

	uses, err := c.Artifact(s.ctx, "Uses")
	s.Require().NoError(err)
	s.True(uses.Unlinked)
	s.Require().ErrorIs(uses.Validate(), artifacts.ErrUnlinkedLibraries)

	artifact, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().NoError(err)
	s.Require().NoError(artifact.Validate())
}

func (s *CompilerTestSuite) TestNoSources() {
	c := s.newCompiler("0.8.17")
	c.config.SourcesDir = s.T().TempDir()

	_, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().ErrorContains(err, "no .sol files found")
	s.Zero(s.runCalls)
}

func (s *CompilerTestSuite) TestNoIncludePathForOldSolc() {
	s.Require().NoError(os.MkdirAll(filepath.Join(s.projectDir, nodeModulesDir, "@openzeppelin"), 0o755))
	s.output = []byte(standardJsonOutputFixture)
	c := s.newCompiler("0.8.7")

	_, err := c.Artifact(s.ctx, "ChainBattles")
	s.Require().NoError(err)
	s.Require().Contains(s.lastArgs, "--base-path")
	s.Require().NotContains(s.lastArgs, "--include-path")
}

func (s *CompilerTestSuite) TestInvalidSolcVersion() {
	for _, version := range []string{"latest", "0.8", "0.4.10"} {
		c := s.newCompiler(version)
		_, err := c.Artifact(s.ctx, "ChainBattles")
		s.Require().ErrorIs(err, ErrInvalidSolcVersion, version)
	}
	s.Zero(s.runCalls)
}

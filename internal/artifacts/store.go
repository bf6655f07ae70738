package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/NilFoundation/deployer/common/logging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultDir       = "artifacts"
	DefaultCacheSize = 64

	buildInfoDir    = "build-info"
	debugFileSuffix = ".dbg.json"
)

// Store looks up compiled artifacts by contract name in a Hardhat (or Foundry) output directory.
type Store struct {
	dir    string
	cache  *lru.Cache[string, *Artifact]
	loads  singleflight.Group
	logger zerolog.Logger
}

func NewStore(dir string, cacheSize int, logger zerolog.Logger) (*Store, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *Artifact](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifacts cache: %w", err)
	}
	return &Store{
		dir:    dir,
		cache:  cache,
		logger: logger,
	}, nil
}

// Artifact returns the artifact of the contract.
// The name is either a bare contract name ("Token") or a fully qualified one ("contracts/Token.sol:Token").
func (s *Store) Artifact(ctx context.Context, name string) (*Artifact, error) {
	if artifact, ok := s.cache.Get(name); ok {
		return artifact, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// concurrent lookups of one name share a single directory scan,
	// which must not fail because one of the callers gave up
	loads := s.loads.DoChan(name, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), name)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-loads:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Artifact), nil
	}
}

func (s *Store) load(ctx context.Context, name string) (*Artifact, error) {
	sourceName, contractName := splitQualifiedName(name)
	path, err := s.find(ctx, sourceName, contractName)
	if err != nil {
		return nil, err
	}

	artifact, err := readArtifact(path, contractName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str(logging.FieldContractName, name).
		Str(logging.FieldArtifactPath, path).
		Msg("artifact loaded")

	s.cache.Add(name, artifact)
	return artifact, nil
}

func splitQualifiedName(name string) (string, string) {
	if i := strings.LastIndex(name, ":"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func (s *Store) find(ctx context.Context, sourceName, contractName string) (string, error) {
	if sourceName != "" {
		// Hardhat keeps the source path: artifacts/contracts/Token.sol/Token.json
		path := filepath.Join(s.dir, filepath.FromSlash(sourceName), contractName+".json")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	candidates, err := s.candidates(ctx, contractName)
	if err != nil {
		return "", err
	}

	if sourceName != "" {
		// Foundry drops directories: out/Token.sol/Token.json
		filtered := candidates[:0]
		for _, path := range candidates {
			if filepath.Base(filepath.Dir(path)) == filepath.Base(sourceName) {
				filtered = append(filtered, path)
			}
		}
		candidates = filtered
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: %q in %s", ErrArtifactNotFound, qualifiedName(sourceName, contractName), s.dir)
	case 1:
		return candidates[0], nil
	default:
		return "", fmt.Errorf("%w for %q, use a fully qualified name: %s",
			ErrAmbiguousArtifact, contractName, strings.Join(candidates, ", "))
	}
}

func (s *Store) candidates(ctx context.Context, contractName string) ([]string, error) {
	fileName := contractName + ".json"
	var candidates []string
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == buildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == fileName && !strings.HasSuffix(d.Name(), debugFileSuffix) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: artifacts directory %s does not exist, compile the contracts first",
			ErrArtifactNotFound, s.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.dir, err)
	}
	return candidates, nil
}

func readArtifact(path, contractName string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	artifact, err := ParseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if artifact.ContractName == "" {
		artifact.ContractName = contractName
	}
	return artifact, nil
}

func qualifiedName(sourceName, contractName string) string {
	if sourceName == "" {
		return contractName
	}
	return sourceName + ":" + contractName
}

package deployer

import (
	"context"
	"errors"
	"fmt"

	"github.com/NilFoundation/deployer/internal/artifacts"
)

// ArtifactSources asks each source in turn until one of them knows the contract.
type ArtifactSources []ArtifactSource

var _ ArtifactSource = ArtifactSources(nil)

func (s ArtifactSources) Artifact(ctx context.Context, name string) (*artifacts.Artifact, error) {
	err := fmt.Errorf("%w: no artifact sources configured", artifacts.ErrArtifactNotFound)
	for _, source := range s {
		artifact, sourceErr := source.Artifact(ctx, name)
		if sourceErr == nil {
			return artifact, nil
		}
		if !errors.Is(sourceErr, artifacts.ErrArtifactNotFound) {
			return nil, sourceErr
		}
		err = sourceErr
	}
	return nil, err
}

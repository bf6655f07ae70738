package deployer

import (
	"context"
	"errors"
	"testing"

	"github.com/NilFoundation/deployer/internal/artifacts"
	"github.com/stretchr/testify/require"
)

func TestArtifactSources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	found := &artifacts.Artifact{ContractName: "ChainBattles"}
	calls := 0
	missing := artifactSourceFunc(func(context.Context, string) (*artifacts.Artifact, error) {
		calls++
		return nil, artifacts.ErrArtifactNotFound
	})
	present := artifactSourceFunc(func(context.Context, string) (*artifacts.Artifact, error) {
		calls++
		return found, nil
	})
	broken := artifactSourceFunc(func(context.Context, string) (*artifacts.Artifact, error) {
		calls++
		return nil, errors.New("solc exited with code 1")
	})

	artifact, err := ArtifactSources{missing, present, broken}.Artifact(ctx, "ChainBattles")
	require.NoError(t, err)
	require.Same(t, found, artifact)
	require.Equal(t, 2, calls)

	_, err = ArtifactSources{missing, broken, present}.Artifact(ctx, "ChainBattles")
	require.ErrorContains(t, err, "solc exited with code 1")

	_, err = ArtifactSources{missing, missing}.Artifact(ctx, "ChainBattles")
	require.ErrorIs(t, err, artifacts.ErrArtifactNotFound)

	_, err = ArtifactSources{}.Artifact(ctx, "ChainBattles")
	require.ErrorIs(t, err, artifacts.ErrArtifactNotFound)
}

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger("deployer", &buf, true)
	logger.Error().Str(FieldContractName, "ChainBattles").Msg("deployment failed")

	out := buf.String()
	require.Contains(t, out, "[deployer]")
	require.Contains(t, out, "deployment failed")
	require.Contains(t, out, "contract=ChainBattles")
	require.NotContains(t, out, "component=")
}

func TestSetupLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	require.NoError(t, SetupLevel(false, "loud"))
	require.Equal(t, zerolog.Disabled, zerolog.GlobalLevel())

	require.Error(t, SetupLevel(true, "loud"))

	require.NoError(t, SetupLevel(true, "debug"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

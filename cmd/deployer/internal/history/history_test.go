package history

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/NilFoundation/deployer/internal/records"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestPrintRecords(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	require.NoError(t, PrintRecords(&out, nil))
	require.Equal(t, "No deployments recorded\n", out.String())

	out.Reset()
	deployedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, PrintRecords(&out, []*records.Record{
		{ContractName: "ChainBattles", Address: "0x0a", ChainId: 1337, TxHash: "0x01", DeployedAt: deployedAt},
	}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, []string{"DEPLOYED", "AT", "CONTRACT", "ADDRESS", "CHAIN", "TX", "HASH"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"2024-03-01T12:00:00Z", "ChainBattles", "0x0a", "1337", "0x01"}, strings.Fields(lines[1]))
}

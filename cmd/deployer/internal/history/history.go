package history

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/NilFoundation/deployer/cmd/deployer/internal/common"
	"github.com/NilFoundation/deployer/internal/records"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const limitFlag = "limit"

var limit int

var (
	addressColor = color.New(color.FgHiGreen)
	hashColor    = color.New(color.FgCyan)
)

func GetCommand(cfg *common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [contract]",
		Short: "Show recorded deployments",
		Long:  "Show deployments recorded in \"records_db\", newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var contract string
			if len(args) > 0 {
				contract = args[0]
			}
			return runHistory(cmd.Context(), cmd.OutOrStdout(), cfg, contract)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&limit, limitFlag, 0, "Show at most this many deployments (0 shows all)")

	return cmd
}

func runHistory(ctx context.Context, out io.Writer, cfg *common.Config, contract string) error {
	storage, err := common.OpenRecords(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	list, err := storage.List(ctx, contract)
	if err != nil {
		return err
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return PrintRecords(out, list)
}

func PrintRecords(out io.Writer, list []*records.Record) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No deployments recorded")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DEPLOYED AT\tCONTRACT\tADDRESS\tCHAIN\tTX HASH")
	for _, record := range list {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			record.DeployedAt.Format(time.RFC3339),
			record.ContractName,
			addressColor.Sprint(record.Address),
			record.ChainId,
			hashColor.Sprint(record.TxHash),
		)
	}
	return w.Flush()
}

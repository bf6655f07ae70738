package version

import (
	"fmt"
	"io"

	"github.com/NilFoundation/deployer/common/version"
	"github.com/spf13/cobra"
)

const appTitle = "Contract deployer"

var short bool

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "version",
		Short:        "Print the deployer version",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			PrintVersionString(cmd.OutOrStdout(), short)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func PrintVersionString(out io.Writer, short bool) {
	info := version.Current(appTitle)
	if short {
		_, _ = fmt.Fprintln(out, info.Version)
		return
	}
	_, _ = fmt.Fprintln(out, info)
}

package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/clusterops/clusterctl/pkg/params"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Show the supported actions and their positional-argument bounds",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Action", "Min Args", "Max Args", "Description"})
		table.SetBorder(true)
		for _, action := range params.Registry() {
			max := strconv.Itoa(action.MaxParams)
			if action.MaxParams == params.MaxUnbounded {
				max = "unbounded"
			}
			table.Append([]string{
				action.Name,
				strconv.Itoa(action.MinParams),
				max,
				action.Short,
			})
		}
		table.Render()
	},
}

func init() {
	RootCmd.AddCommand(actionsCmd)
}

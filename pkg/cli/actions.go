package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clusterops/clusterctl/pkg/params"
)

// newActionCommand wraps one lifecycle action in a cobra command. Positional
// arguments are accepted unconditionally here; the count bounds belong to
// Validate so that its error messages and diagnostics are the ones the user
// sees.
func newActionCommand(action params.Action) *cobra.Command {
	return &cobra.Command{
		Use:   useLine(action),
		Short: action.Short,
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return collect(action, args).Validate(log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := collect(action, args)
			if Run == nil {
				return fmt.Errorf("no handler installed for action %q", a.Action.Name)
			}
			return Run(cmd.Context(), a)
		},
	}
}

// collect builds the argument holder for one invocation from the shared flag
// state and the positional arguments cobra left over.
func collect(action params.Action, args []string) *params.ActionArgs {
	return &params.ActionArgs{
		Action:      action,
		Parameters:  args,
		Definitions: definitions,
		SysProps:    sysProps,
		Debug:       debug,
	}
}

func useLine(action params.Action) string {
	switch {
	case action.MaxParams == params.MaxUnbounded:
		return action.Name + " <cluster> [component=count...]"
	case action.MinParams == 0:
		return action.Name + " [cluster]"
	default:
		return action.Name + " <cluster>"
	}
}

func init() {
	for _, action := range params.Registry() {
		RootCmd.AddCommand(newActionCommand(action))
	}
}

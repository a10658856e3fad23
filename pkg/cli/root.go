// Package cli assembles the clusterctl command tree. It binds the shared
// flag surface, validates each action's positional arguments, and hands the
// populated argument holder to the Run hook installed by the embedding
// application.
package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clusterops/clusterctl/internal/constants"
	"github.com/clusterops/clusterctl/internal/logging"
	"github.com/clusterops/clusterctl/internal/util"
	"github.com/clusterops/clusterctl/pkg/params"
)

// Run executes a validated action. The embedding application installs it
// before calling Execute; while it is unset every action command fails with
// a clear error instead of silently doing nothing.
var Run func(ctx context.Context, args *params.ActionArgs) error

var (
	definitions []string
	sysProps    []string
	debug       bool

	log *zap.SugaredLogger

	RootCmd = &cobra.Command{
		Use:           "clusterctl",
		Short:         "Manage the lifecycle of services running on a cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// One logger per invocation, tagged so operator logs from a
			// single run can be correlated.
			log = logging.New(debug).With("invocation", uuid.NewString())
			log.Debugf("running %s with args %v", cmd.Name(), args)
		},
	}
)

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringArrayVarP(&definitions, constants.FlagDefine, constants.FlagDefineShorthand, nil,
		"Configuration override as name=value, persisted at create/reconfigure time")
	flags.StringArrayVarP(&sysProps, constants.FlagSysProp, constants.FlagSysPropShorthand, nil,
		"Process property as \"name value\", applied after start, not persisted")
	flags.BoolVar(&debug, constants.FlagDebug, false, "Enable debug logging")

	for _, name := range []string{constants.FlagDefine, constants.FlagSysProp, constants.FlagDebug} {
		if err := flags.MarkHidden(name); err != nil {
			panic(err)
		}
	}
}

// Execute runs the command tree with a signal-aware context.
func Execute() error {
	ctx, cancel := util.SignalContext()
	defer cancel()
	return RootCmd.ExecuteContext(ctx)
}

// Package params holds the parsed command-line input for one clusterctl
// action and enforces each action's positional-argument bounds before the
// action runs.
package params

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/clusterops/clusterctl/internal/logging"
)

// ActionArgs is the argument holder for a single invocation. The command
// layer populates it from flags and positional arguments, calls Validate
// once, and hands it to the action handler. Definitions and SysProps are
// stored as the raw strings the user supplied; splitting them into key/value
// pairs is the consumer's job.
type ActionArgs struct {
	Action Action

	// Parameters are the positional arguments in command-line order. The
	// first one, when present, is the cluster service name.
	Parameters []string

	// Definitions are `name=value` configuration overrides from the
	// repeatable -D flag. They are persisted by the cluster and applied
	// only when a service is created or reconfigured.
	Definitions []string

	// SysProps are `name value` process properties from the repeatable -S
	// flag. They are applied after the service process starts and are not
	// persisted.
	SysProps []string

	Debug bool
}

// ClusterName returns the first positional argument. The second return is
// false when there are no positional arguments. Safe to call before
// Validate.
func (a *ActionArgs) ClusterName() (string, bool) {
	if len(a.Parameters) == 0 {
		return "", false
	}
	return a.Parameters[0], true
}

// Validate checks the positional-argument count against the action's bounds.
// It returns *InsufficientArgsError or *TooManyArgsError; both are terminal
// for the invocation. On the too-many path every positional argument is also
// written to log at error level, one line per argument, 1-indexed. A nil log
// disables that output.
func (a *ActionArgs) Validate(log *zap.SugaredLogger) error {
	if log == nil {
		log = logging.Nop()
	}
	min := a.Action.MinParams
	actual := len(a.Parameters)
	if actual < min {
		return &InsufficientArgsError{Action: a.Action.Name, Expected: min, Actual: actual}
	}
	max := a.Action.MaxParams
	if max == MaxUnbounded {
		max = min
	}
	if actual > max {
		err := &TooManyArgsError{
			Action: a.Action.Name,
			Limit:  max,
			Actual: actual,
			Args:   append([]string(nil), a.Parameters...),
		}
		log.Error(err.prefix())
		for i, arg := range a.Parameters {
			log.Errorf("[%d] %q", i+1, arg)
		}
		return err
	}
	return nil
}

// String is for diagnostics only.
func (a *ActionArgs) String() string {
	return fmt.Sprintf("%T: %s", a, a.Action.Name)
}

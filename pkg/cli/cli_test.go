package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterops/clusterctl/internal/constants"
	"github.com/clusterops/clusterctl/pkg/params"
)

// execute resets the shared flag state, runs the command tree with the given
// arguments, and returns the captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	definitions = nil
	sysProps = nil
	debug = false
	t.Cleanup(func() {
		definitions = nil
		sysProps = nil
		debug = false
		Run = nil
	})

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStatusRoundTrip(t *testing.T) {
	var got *params.ActionArgs
	Run = func(ctx context.Context, a *params.ActionArgs) error {
		got = a
		return nil
	}

	_, err := execute(t, "status", "clusterA", "-D", "x=1", "-D", "y=2", "-S", "a b", "--debug")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "status", got.Action.Name)
	assert.Equal(t, []string{"clusterA"}, got.Parameters)
	assert.Equal(t, []string{"x=1", "y=2"}, got.Definitions)
	assert.Equal(t, []string{"a b"}, got.SysProps)
	assert.True(t, got.Debug)

	name, ok := got.ClusterName()
	require.True(t, ok)
	assert.Equal(t, "clusterA", name)
}

func TestValidationFailureStopsDispatch(t *testing.T) {
	called := false
	Run = func(ctx context.Context, a *params.ActionArgs) error {
		called = true
		return nil
	}

	_, err := execute(t, "create")
	require.Error(t, err)

	var insufficient *params.InsufficientArgsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "create", insufficient.Action)
	assert.False(t, called)
}

func TestTooManyArgumentsRejected(t *testing.T) {
	Run = func(ctx context.Context, a *params.ActionArgs) error {
		return nil
	}

	_, err := execute(t, "stop", "clusterA", "extra")
	require.Error(t, err)

	var tooMany *params.TooManyArgsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, []string{"clusterA", "extra"}, tooMany.Args)
}

func TestNoHandlerInstalled(t *testing.T) {
	Run = nil
	_, err := execute(t, "start", "clusterA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
	assert.Contains(t, err.Error(), "start")
}

func TestActionsTable(t *testing.T) {
	out, err := execute(t, "actions")
	require.NoError(t, err)

	for _, action := range params.Registry() {
		assert.Contains(t, out, action.Name)
	}
	assert.Contains(t, out, "unbounded")
}

func TestSharedFlagsAreHidden(t *testing.T) {
	for _, name := range []string{constants.FlagDefine, constants.FlagSysProp, constants.FlagDebug} {
		flag := RootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.True(t, flag.Hidden, name)
	}
}

package params

// MaxUnbounded marks an action as declaring no upper limit on its positional
// arguments. Validate collapses it to the action's minimum, so in practice an
// unbounded action behaves as if its maximum equalled its minimum. This
// mirrors long-standing behavior that downstream tooling may depend on; do
// not change it without auditing every caller.
const MaxUnbounded = -1

// Action describes one subcommand: the name the user types, a short help
// string, and the positional-argument bounds the action declares.
type Action struct {
	Name      string
	Short     string
	MinParams int
	MaxParams int
}

// NewAction returns a descriptor with the standard bounds: exactly one
// positional argument, the cluster name. Actions with other bounds are
// declared as literals.
func NewAction(name, short string) Action {
	return Action{Name: name, Short: short, MinParams: 1, MaxParams: 1}
}

// The supported lifecycle actions.
var (
	ActionCreate  = NewAction("create", "Create a service on the cluster")
	ActionDestroy = NewAction("destroy", "Destroy a stopped service and its persisted configuration")
	ActionStart   = NewAction("start", "Start a stopped service")
	ActionStop    = NewAction("stop", "Stop a running service")
	ActionStatus  = NewAction("status", "Report the status of a service")
	ActionExists  = NewAction("exists", "Check whether a service is defined")

	// list takes an optional service name; with none it lists everything.
	ActionList = Action{
		Name:      "list",
		Short:     "List services, or show one service when a name is given",
		MinParams: 0,
		MaxParams: 1,
	}

	// flex takes the service name plus component=count pairs.
	ActionFlex = Action{
		Name:      "flex",
		Short:     "Change the number of instances of a service component",
		MinParams: 1,
		MaxParams: MaxUnbounded,
	}
)

// Registry returns the supported actions in display order.
func Registry() []Action {
	return []Action{
		ActionCreate,
		ActionDestroy,
		ActionStart,
		ActionStop,
		ActionStatus,
		ActionExists,
		ActionFlex,
		ActionList,
	}
}

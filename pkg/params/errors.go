package params

import (
	"fmt"
	"strings"
)

// InsufficientArgsError reports fewer positional arguments than the action's
// declared minimum.
type InsufficientArgsError struct {
	Action   string
	Expected int
	Actual   int
}

func (e *InsufficientArgsError) Error() string {
	return fmt.Sprintf("not enough arguments for action %s: expected minimum %d but got %d",
		e.Action, e.Expected, e.Actual)
}

// TooManyArgsError reports more positional arguments than the action's
// effective maximum. Args holds every positional argument of the rejected
// invocation, in command-line order.
type TooManyArgsError struct {
	Action string
	Limit  int
	Actual int
	Args   []string
}

func (e *TooManyArgsError) Error() string {
	var b strings.Builder
	b.WriteString(e.prefix())
	for _, arg := range e.Args {
		fmt.Fprintf(&b, " %q ", arg)
	}
	return b.String()
}

func (e *TooManyArgsError) prefix() string {
	return fmt.Sprintf("too many arguments for action %s: limit is %d but saw %d:",
		e.Action, e.Limit, e.Actual)
}

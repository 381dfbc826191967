package commands

import (
	"context"

	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/events"
)

// ErrCannotExecute is returned by Execute when CanExecute is false.
var ErrCannotExecute = errors.New("commands: command cannot execute")

// Command is the executable unit bound to UI triggers. The
// CanExecuteChanged surface is raised whenever the command's
// executability may have changed; binding layers subscribe to it to
// refresh control state.
type Command interface {
	Execute(ctx context.Context) error
	CanExecute() bool
	CanExecuteChanged() events.Surface
}

// ExecuteFunc is the action a relay command runs.
type ExecuteFunc func(ctx context.Context) error

// CanExecuteFunc reports whether a relay command may run. A nil
// CanExecuteFunc means always executable.
type CanExecuteFunc func() bool

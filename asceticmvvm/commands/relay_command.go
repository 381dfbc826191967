package commands

import (
	"context"

	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/events"
)

// NewRelayCommand builds a command around the given funcs. The
// can-execute-changed surface comes from factory with the command
// itself as sender, so a weak factory yields subscriptions that never
// pin their observers.
func NewRelayCommand(factory events.Factory, execute ExecuteFunc, canExecute CanExecuteFunc) *RelayCommandImp {
	c := &RelayCommandImp{
		execute:    execute,
		canExecute: canExecute,
	}
	c.changed = factory.NewSurface(c)
	return c
}

type RelayCommandImp struct {
	execute    ExecuteFunc
	canExecute CanExecuteFunc
	changed    events.Surface
}

func (c *RelayCommandImp) CanExecute() bool {
	if c.canExecute == nil {
		return true
	}
	return c.canExecute()
}

func (c *RelayCommandImp) Execute(ctx context.Context) error {
	if !c.CanExecute() {
		return ErrCannotExecute
	}
	if c.execute == nil {
		return nil
	}
	return c.execute(ctx)
}

func (c *RelayCommandImp) CanExecuteChanged() events.Surface {
	return c.changed
}

// RaiseCanExecuteChanged notifies subscribers that executability may
// have changed. Handler errors propagate fail-fast from the surface.
func (c *RelayCommandImp) RaiseCanExecuteChanged() error {
	return c.changed.Raise()
}

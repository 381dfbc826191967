package commands

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/disposable"
	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/events"
)

// NewCompositeCommand builds a command that executes its children as a
// group. Children passed here are registered in order; more can be
// added later with Register.
func NewCompositeCommand(factory events.Factory, children ...Command) *CompositeCommandImp {
	c := &CompositeCommandImp{
		children: append([]Command(nil), children...),
	}
	c.changed = factory.NewSurface(c)
	return c
}

// CompositeCommandImp executes child commands in registration order.
// Unlike event delivery, execution is not fail-fast: every child runs
// and the failures are accumulated and returned together.
type CompositeCommandImp struct {
	children []Command
	changed  events.Surface
}

// Register adds a child command and returns a disposable that removes
// it again.
func (c *CompositeCommandImp) Register(cmd Command) disposable.Disposable {
	c.children = append(c.children, cmd)
	return disposable.NewDisposable(func() {
		c.unregister(cmd)
	})
}

func (c *CompositeCommandImp) unregister(cmd Command) {
	for i, child := range c.children {
		if child == cmd {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// CanExecute reports whether every registered child can execute. A
// composite with no children cannot execute.
func (c *CompositeCommandImp) CanExecute() bool {
	if len(c.children) == 0 {
		return false
	}
	for _, child := range c.children {
		if !child.CanExecute() {
			return false
		}
	}
	return true
}

func (c *CompositeCommandImp) Execute(ctx context.Context) error {
	if !c.CanExecute() {
		return ErrCannotExecute
	}
	var result error
	for i, child := range c.children {
		if err := child.Execute(ctx); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "child command %d", i))
		}
	}
	return result
}

func (c *CompositeCommandImp) CanExecuteChanged() events.Surface {
	return c.changed
}

func (c *CompositeCommandImp) RaiseCanExecuteChanged() error {
	return c.changed.Raise()
}

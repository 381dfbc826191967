package events

import (
	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/disposable"
)

// Empty is the argument marker delivered with events that carry no
// payload, such as a command's can-execute-changed.
type Empty struct{}

// Handler receives a raised event. The sender is the identity fixed at
// surface construction. A non-nil error aborts delivery to the
// remaining handlers of that raise and propagates to the caller.
type Handler func(sender any, args Empty) error

// Surface is the subscribe/unsubscribe/raise abstraction consumed by
// command implementations, independent of whether subscriptions are
// held weakly or strongly.
//
// Handlers are identified by pointer: the same *Handler passed to
// Subscribe is passed to Unsubscribe. Subscribing the same handler
// twice is legal and produces duplicate invocations; unsubscribing a
// handler that was never subscribed is a silent no-op.
type Surface interface {
	Sender() any
	Subscribe(handler *Handler) disposable.Disposable
	Unsubscribe(handler *Handler)
	Raise() error
}

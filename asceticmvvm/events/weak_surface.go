package events

import (
	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/disposable"
	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/weakref"
)

func NewWeakSurface(sender any) *WeakSurfaceImp {
	return &WeakSurfaceImp{
		sender:      sender,
		subscribers: weakref.NewCollection[Handler](),
	}
}

// WeakSurfaceImp holds its subscribers weakly: a subscriber that keeps
// no other strong reference to its *Handler becomes collectable and is
// never invoked again. This keeps long-lived event sources from
// pinning otherwise unreferenced observers, so explicit unsubscription
// is optional. The caller owns the strong reference to the handler for
// as long as it wants deliveries.
type WeakSurfaceImp struct {
	sender      any
	subscribers *weakref.CollectionImp[Handler]
}

// Sender returns the identity passed to every raised handler. It is
// fixed for the lifetime of the surface.
func (s *WeakSurfaceImp) Sender() any {
	return s.sender
}

func (s *WeakSurfaceImp) Subscribe(handler *Handler) disposable.Disposable {
	s.subscribers.Add(handler)
	return disposable.NewDisposable(func() {
		s.Unsubscribe(handler)
	})
}

func (s *WeakSurfaceImp) Unsubscribe(handler *Handler) {
	s.subscribers.Remove(handler)
}

// Raise invokes every currently live handler with (sender, Empty{}) in
// insertion order. The first handler error stops delivery and is
// returned; the surface performs no recovery on behalf of handlers.
func (s *WeakSurfaceImp) Raise() error {
	for handler := range s.subscribers.Live() {
		if err := (*handler)(s.sender, Empty{}); err != nil {
			return err
		}
	}
	return nil
}

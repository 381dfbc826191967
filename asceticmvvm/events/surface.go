package events

import (
	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/disposable"
)

func NewSurface(sender any) *SurfaceImp {
	return &SurfaceImp{sender: sender}
}

// SurfaceImp is the strong variant of Surface: an ordinary ordered
// handler list with no weak semantics. Subscribers stay reachable
// until unsubscribed.
type SurfaceImp struct {
	sender   any
	handlers []*Handler
}

func (s *SurfaceImp) Sender() any {
	return s.sender
}

func (s *SurfaceImp) Subscribe(handler *Handler) disposable.Disposable {
	if handler == nil {
		return disposable.NewDisposable(nil)
	}
	s.handlers = append(s.handlers, handler)
	return disposable.NewDisposable(func() {
		s.Unsubscribe(handler)
	})
}

func (s *SurfaceImp) Unsubscribe(handler *Handler) {
	for i, h := range s.handlers {
		if h == handler {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

func (s *SurfaceImp) Raise() error {
	for _, handler := range s.handlers {
		if err := (*handler)(s.sender, Empty{}); err != nil {
			return err
		}
	}
	return nil
}

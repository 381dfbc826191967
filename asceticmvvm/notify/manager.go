// Package notify defers and consolidates property-changed
// notifications. While at least one deferral scope is open, registered
// notifications are deduplicated by (target identity, property name)
// and held; when the last scope closes they are flushed to their
// targets exactly once each.
package notify

import (
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/disposable"
)

// ErrNilTarget is returned by Register and RegisterName when the
// notification target is missing.
var ErrNilTarget = errors.New("notify: nil notification target")

// pendingKey identifies a held notification. The target is compared by
// reference, the property name by value.
type pendingKey struct {
	target   Notifiable
	property string
}

func NewManager() *ManagerImp {
	return &ManagerImp{
		pending: make(map[pendingKey]PropertyChangedArgs),
		args:    NewArgsCache(DefaultArgsCacheSize),
	}
}

// ManagerImp batches property-changed notifications per execution
// context. One instance belongs to one logical thread of control;
// attach it to that context with NewContext. Two contexts never share
// pending notifications or a reference count, and a manager must not
// be used from more than one goroutine at a time.
//
// Scopes nest by reference counting: each BeginDefer is balanced by
// disposing the returned scope, and the flush happens synchronously
// the instant the count returns to zero.
type ManagerImp struct {
	refCount int
	pending  map[pendingKey]PropertyChangedArgs
	order    []pendingKey
	args     *ArgsCache
}

// BeginDefer opens a deferral scope. Disposing the returned scope
// closes it; when the outermost scope closes, all held notifications
// flush and Dispose returns the first flush error, if any.
//
// Disposing a scope twice, or otherwise releasing more scopes than
// were begun, is a contract violation and panics.
func (m *ManagerImp) BeginDefer() disposable.Disposable {
	m.refCount++
	return &scopeImp{manager: m}
}

// Deferring reports whether at least one deferral scope is open.
func (m *ManagerImp) Deferring() bool {
	return m.refCount > 0
}

// Register routes a property-changed notification for target. With no
// open scope it raises synchronously before returning. With an open
// scope it inserts or overwrites the pending entry for (target,
// args.PropertyName): the last registration's args win, and the pair
// flushes once no matter how many registrations occurred.
func (m *ManagerImp) Register(target Notifiable, args PropertyChangedArgs) error {
	if target == nil {
		return ErrNilTarget
	}
	if m.refCount == 0 {
		return target.RaisePropertyChanged(args)
	}
	key := pendingKey{target: target, property: args.PropertyName}
	if _, held := m.pending[key]; !held {
		m.order = append(m.order, key)
	}
	m.pending[key] = args
	return nil
}

// RegisterName is the string convenience overload of Register; the
// args value is the canonical one from the manager's args cache.
func (m *ManagerImp) RegisterName(target Notifiable, propertyName string) error {
	if target == nil {
		return ErrNilTarget
	}
	return m.Register(target, m.args.Lookup(propertyName))
}

func (m *ManagerImp) release() error {
	if m.refCount == 0 {
		panic("notify: deferral scope released without a matching BeginDefer")
	}
	m.refCount--
	if m.refCount > 0 {
		return nil
	}
	return m.flush()
}

// flush drains the pending set in first-registration order. The set is
// swapped out before any handler runs, so a handler that opens a new
// scope and registers more notifications starts a fresh batch instead
// of feeding the pass in progress. The loop repeats while the count is
// still zero and fresh pending work appeared; a handler that leaves a
// scope open keeps its batch held for that scope's release.
func (m *ManagerImp) flush() error {
	for m.refCount == 0 && len(m.order) > 0 {
		order := m.order
		pending := m.pending
		m.order = nil
		m.pending = make(map[pendingKey]PropertyChangedArgs)
		for _, key := range order {
			if err := key.target.RaisePropertyChanged(pending[key]); err != nil {
				return err
			}
		}
	}
	return nil
}

type scopeImp struct {
	manager  *ManagerImp
	released bool
}

func (s *scopeImp) Dispose() error {
	if s.released {
		panic("notify: deferral scope disposed twice")
	}
	s.released = true
	return s.manager.release()
}

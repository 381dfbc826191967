package notify

import "context"

type managerKey struct{}

// NewContext returns a context carrying m. The manager stays bound to
// the logical thread of control that owns ctx; it is never a
// process-wide singleton.
func NewContext(ctx context.Context, m *ManagerImp) context.Context {
	return context.WithValue(ctx, managerKey{}, m)
}

// FromContext returns the manager attached to ctx, or a fresh one when
// none is attached. The fresh manager is not retroactively attached;
// use NewContext to propagate it.
func FromContext(ctx context.Context) *ManagerImp {
	if m, ok := ctx.Value(managerKey{}).(*ManagerImp); ok {
		return m
	}
	return NewManager()
}

package events

// Factory selects which Surface variant newly constructed commands
// receive. It is built once at startup and passed to whatever
// constructs commands; there is no process-wide mutable default.
type Factory struct {
	// Weak selects weakly held subscriptions for new surfaces.
	Weak bool
}

func (f Factory) NewSurface(sender any) Surface {
	if f.Weak {
		return NewWeakSurface(sender)
	}
	return NewSurface(sender)
}

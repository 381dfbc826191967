package notify

// PropertyChangedArgs carries the name of the property that changed
// and, optionally, its new value. Consolidation keys on the name only;
// when registrations for the same (target, name) pair are merged, the
// last registration's args survive.
type PropertyChangedArgs struct {
	PropertyName string
	Value        any
}

// Notifiable is the capability a property-owning object implements to
// receive change notifications, immediate or consolidated. The manager
// only calls it; how the object fans the notification out to its own
// observers is the object's concern.
type Notifiable interface {
	RaisePropertyChanged(args PropertyChangedArgs) error
}

// Package observable provides an embeddable base for property-owning
// objects such as view models. The base implements notify.Notifiable
// and fans each notification out to its attached observers.
package observable

import (
	"reflect"

	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/disposable"
	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/notify"
)

// Observer receives a property-changed notification. A non-nil error
// aborts delivery to the remaining observers and propagates.
type Observer func(args notify.PropertyChangedArgs) error

type entry struct {
	id       any
	observer Observer
}

// Object is embedded into a property-owning struct:
//
//	type personViewModel struct {
//	    observable.Object
//	    Name string
//	}
//
// The embedded Object is the notification identity of the owner;
// notifications for two owners never consolidate with each other.
type Object struct {
	observers []entry
}

// OnPropertyChanged attaches an observer and returns a disposable that
// detaches it. Observers are identified by function pointer unless an
// explicit observerID is supplied; attaching the same identity twice
// keeps the first attachment.
func (o *Object) OnPropertyChanged(observer Observer, observerID ...any) disposable.Disposable {
	id := resolveID(observer, observerID)
	for _, e := range o.observers {
		if e.id == id {
			return disposable.NewDisposable(func() {
				o.detach(id)
			})
		}
	}
	o.observers = append(o.observers, entry{id: id, observer: observer})
	return disposable.NewDisposable(func() {
		o.detach(id)
	})
}

func (o *Object) detach(id any) {
	for i, e := range o.observers {
		if e.id == id {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// RaisePropertyChanged delivers args to every attached observer in
// attachment order, stopping at the first error.
func (o *Object) RaisePropertyChanged(args notify.PropertyChangedArgs) error {
	for _, e := range o.observers {
		if err := e.observer(args); err != nil {
			return err
		}
	}
	return nil
}

// Notify routes a property-changed notification through m, so a batch
// of mutations under one deferral scope produces a single notification
// per property.
func (o *Object) Notify(m *notify.ManagerImp, propertyName string) error {
	return m.RegisterName(o, propertyName)
}

func resolveID(observer Observer, observerID []any) any {
	if len(observerID) > 0 {
		return observerID[0]
	}
	return reflect.ValueOf(observer).Pointer()
}

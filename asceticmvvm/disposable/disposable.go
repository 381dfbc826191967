package disposable

import "github.com/hashicorp/go-multierror"

func NewDisposable(action func()) *DisposableImp {
	return &DisposableImp{action: action}
}

type DisposableImp struct {
	action func()
}

func (d *DisposableImp) Dispose() error {
	if d.action != nil {
		d.action()
	}
	return nil
}

func NewCompositeDisposable(disposables ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{disposables: disposables}
}

// CompositeDisposableImp disposes a group of disposables as one. Every
// member is disposed even if an earlier one fails; failures are
// accumulated and returned together.
type CompositeDisposableImp struct {
	disposables []Disposable
}

func (c *CompositeDisposableImp) Dispose() error {
	var result error
	for _, d := range c.disposables {
		if err := d.Dispose(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

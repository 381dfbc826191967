package disposable

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type failingDisposable struct {
	err error
}

func (d *failingDisposable) Dispose() error {
	return d.err
}

func TestDisposable_RunsAction(t *testing.T) {
	ran := 0
	d := NewDisposable(func() { ran++ })
	assert.NoError(t, d.Dispose())
	assert.Equal(t, 1, ran)
}

func TestDisposable_NilActionIsSafe(t *testing.T) {
	d := NewDisposable(nil)
	assert.NoError(t, d.Dispose())
}

func TestCompositeDisposable_DisposesAllInOrder(t *testing.T) {
	var order []int
	c := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
		NewDisposable(func() { order = append(order, 3) }),
	)
	assert.NoError(t, c.Dispose())
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCompositeDisposable_CollectsErrorsAndKeepsGoing(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")
	ran := false
	c := NewCompositeDisposable(
		&failingDisposable{err: err1},
		NewDisposable(func() { ran = true }),
		&failingDisposable{err: err2},
	)

	err := c.Dispose()
	assert.True(t, ran)
	assert.ErrorIs(t, err, err1)
	assert.ErrorIs(t, err, err2)
}

func TestCompositeDisposable_EmptyIsNoop(t *testing.T) {
	assert.NoError(t, NewCompositeDisposable().Dispose())
}

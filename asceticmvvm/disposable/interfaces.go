package disposable

// Disposable reverses a side effect, such as a subscription or an open
// scope, when disposed. Dispose reports the first failure encountered
// while unwinding; disposables built from plain actions never fail.
type Disposable interface {
	Dispose() error
}

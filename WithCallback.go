package cursor

import "go.llib.dev/cursor/errorkit"

// WithCallback hooks the given callbacks into the iterator's lifecycle.
// Without any callback option the iterator is returned as is.
func WithCallback[T any](i Iterator[T], opts ...CallbackOption) Iterator[T] {
	if len(opts) == 0 {
		return i
	}
	var conf callbackConfig
	for _, opt := range opts {
		opt.configure(&conf)
	}
	return &callbackIter[T]{Iterator: i, conf: conf}
}

// OnClose registers a callback that runs as part of the iterator's Close call.
// The iterator's own Close error and the errors of the registered callbacks
// are merged into the error Close returns.
func OnClose(fn func() error) CallbackOption {
	return callbackOptionFunc(func(c *callbackConfig) {
		c.onClose = append(c.onClose, fn)
	})
}

type CallbackOption interface {
	configure(c *callbackConfig)
}

type callbackOptionFunc func(c *callbackConfig)

func (fn callbackOptionFunc) configure(c *callbackConfig) { fn(c) }

type callbackConfig struct {
	onClose []func() error
}

type callbackIter[T any] struct {
	Iterator[T]
	conf callbackConfig
}

func (i *callbackIter[T]) Close() error {
	errs := []error{i.Iterator.Close()}
	for _, fn := range i.conf.onClose {
		errs = append(errs, fn())
	}
	return errorkit.Merge(errs...)
}

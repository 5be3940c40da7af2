package eventbus

import "errors"

var (
	// ErrNilCallback is returned when Subscribe is called with a nil callback.
	ErrNilCallback = errors.New("callback is nil")

	// ErrNotAFunction is returned when Subscribe is called with a value that
	// is not a function.
	ErrNotAFunction = errors.New("callback is not a function")

	// ErrVariadicCallback is returned when Subscribe is called with a variadic
	// function. A variadic signature has no fixed arity to match published
	// arguments against.
	ErrVariadicCallback = errors.New("variadic callbacks are not supported")
)

/*
Package result implements a result type for computations which may fail.

A Result either holds a value (Ok) or an error (Err). Clients inspect a result by
pattern matching:

    var ok bool
    var err error
    switch m := tree.TryRemove(7).Match(); m {
    case m.Ok(&ok):
        …
    case m.Err(&err):
        …
    }

*/
package result

// Result is either Ok(value) or Err(error).
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Error() error
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. Err(nil) is a programming error and panics.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Error returns the error of an Err result and nil for Ok results.
func (r result[T]) Error() error {
	return r.err
}

// WithDefault returns the value of an Ok result, def otherwise.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// AndThen chains a computation which may fail onto a result.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err != nil {
		return nil
	}
	*v = rm.r.value
	return rm
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err == nil {
		return nil
	}
	*err = rm.r.err
	return rm
}

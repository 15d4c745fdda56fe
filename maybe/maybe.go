/*
Package maybe implements an option type: a value is either present (Just) or absent
(Nothing).

    var s string
    switch m := cell.Match(); m {
    case m.Just(&s):
        …
    case m.Nothing():
        …
    }

*/
package maybe

// Maybe holds either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing represents an absent value of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

// Of returns Nothing if ok is false, Just(x) otherwise.
func Of[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Fold applies f to the value of x, if present, and returns zero otherwise.
func Fold[T, S any](f func(T) S, zero S, x Maybe[T]) S {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return zero
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if !mm.m.tag {
		return nil
	}
	*v = mm.m.value
	return mm
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if mm.m.tag {
		return nil
	}
	return mm
}

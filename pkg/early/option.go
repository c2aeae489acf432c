package early

// Option is a two-variant container holding either a present value (Some)
// or nothing (None). The zero value is None.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:  v,
		isSome: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// SomeNotNil builds an Option from a value that may be a nil pointer or
// nil interface: nil maps to None, anything else to Some.
func SomeNotNil[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// OrElse returns the present value, or fallback when the Option is None.
func (o Option[T]) OrElse(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}

// MustGet returns the present value and panics on None. Callers that cannot
// tolerate a panic should use Get or one of the guard forms.
func (o Option[T]) MustGet() T {
	if !o.isSome {
		panic("early: MustGet on None")
	}
	return o.value
}

package either

import (
	"github.com/ib-77/either3/pkg/rop"
)

// ToResult converts an error-typed either into a result: a left becomes a
// failure wrapping the same error value unchanged, a right becomes a success.
func ToResult[A any](e Either[error, A]) rop.Result[A] {
	if e.IsLeft() {
		return rop.Fail[A](e.Left())
	}
	return rop.Success(e.Right())
}

// ToResultWith converts an either whose left branch is not an error yet,
// applying adapt on the left path only. A right either never invokes adapt.
// If adapt panics, the panic reaches the caller unmodified.
func ToResultWith[E, A any](e Either[E, A], adapt func(l E) error) rop.Result[A] {
	if e.IsLeft() {
		return rop.Fail[A](adapt(e.Left()))
	}
	return rop.Success(e.Right())
}

// FromResult is the reverse bridge: a failure becomes a left holding the
// error, a success becomes a right holding the value.
func FromResult[A any](r rop.Result[A]) Either[error, A] {
	if r.IsSuccess() {
		return Right[error](r.Result())
	}
	return Left[error, A](r.Err())
}

// FromPair lifts an idiomatic (value, error) pair into an either.
func FromPair[A any](a A, err error) Either[error, A] {
	if rop.IsNil(err) {
		return Right[error](a)
	}
	return Left[error, A](err)
}

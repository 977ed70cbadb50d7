package either

import "fmt"

// Either holds exactly one of two values, left or right. By this module's
// convention right carries the success-biased value and left the bad one;
// that reading is a convention of the call sites, not something the type
// enforces.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{
		left:    l,
		isRight: false,
	}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{
		right:   r,
		isRight: true,
	}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left payload, or the zero value when the either is right.
func (e Either[L, R]) Left() L {
	return e.left
}

// Right returns the right payload, or the zero value when the either is left.
func (e Either[L, R]) Right() R {
	return e.right
}

func (e Either[L, R]) GetOrElse(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

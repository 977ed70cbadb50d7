package either

func Map[L, R, R2 any](e Either[L, R], onRight func(r R) R2) Either[L, R2] {
	if e.IsRight() {
		return Right[L](onRight(e.Right()))
	}
	return Left[L, R2](e.Left())
}

func MapLeft[L, L2, R any](e Either[L, R], onLeft func(l L) L2) Either[L2, R] {
	if e.IsLeft() {
		return Left[L2, R](onLeft(e.Left()))
	}
	return Right[L2](e.Right())
}

func BiMap[L, L2, R, R2 any](e Either[L, R],
	onLeft func(l L) L2, onRight func(r R) R2) Either[L2, R2] {

	if e.IsRight() {
		return Right[L2](onRight(e.Right()))
	}
	return Left[L2, R2](onLeft(e.Left()))
}

// Fold collapses the either into a single value via the branch handlers.
func Fold[L, R, Out any](e Either[L, R],
	onLeft func(l L) Out, onRight func(r R) Out) Out {

	if e.IsRight() {
		return onRight(e.Right())
	}
	return onLeft(e.Left())
}

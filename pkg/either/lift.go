package either

// ToRight lifts a bare value into the right branch. The L parameter only
// fixes the type of the unused left branch, so call sites usually name it
// explicitly: ToRight[error](42).
func ToRight[L, R any](r R) Either[L, R] {
	return Right[L, R](r)
}

// ToLeft lifts a bare value into the left branch. The R parameter fixes the
// type of the unused right branch.
func ToLeft[L, R any](l L) Either[L, R] {
	return Left[L, R](l)
}

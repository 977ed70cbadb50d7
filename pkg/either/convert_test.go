package either

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/either3/pkg/rop"
)

func TestToResult_LeftKeepsErrorIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	res := ToResult(Left[error, int](err))

	if res.IsSuccess() || !res.IsFailure() {
		t.Fatalf("expected failure, got: success=%v", res.IsSuccess())
	}
	if res.Err() != err {
		t.Fatalf("expected the same error value, got: %v", res.Err())
	}
}

func TestToResult_Right(t *testing.T) {
	t.Parallel()
	res := ToResult(Right[error](42))
	if !res.IsSuccess() || res.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestToResultWith_LeftAppliesAdapter(t *testing.T) {
	t.Parallel()
	e := ToLeft[string, int]("boom")
	res := ToResultWith(e, func(msg string) error { return fmt.Errorf("runtime: %s", msg) })

	if !res.IsFailure() || res.Err() == nil || res.Err().Error() != "runtime: boom" {
		t.Fatalf("expected failure 'runtime: boom', got: failure=%v, err=%v", res.IsFailure(), res.Err())
	}
}

func TestToResultWith_RightNeverInvokesAdapter(t *testing.T) {
	t.Parallel()
	called := false
	res := ToResultWith(Right[string](42), func(msg string) error {
		called = true
		return errors.New(msg)
	})

	if !res.IsSuccess() || res.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
	if called {
		t.Fatalf("adapter should not be called on the right path")
	}
}

func TestToResultWith_AdapterPanicPropagates(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected the adapter panic to reach the caller")
		}
	}()
	ToResultWith(ToLeft[string, int]("bad"), func(msg string) error {
		panic(msg)
	})
}

func TestRoundTrip_ValueToRightToResult(t *testing.T) {
	t.Parallel()
	res := ToResult(ToRight[error]("hello"))
	if !res.IsSuccess() || res.Result() != "hello" {
		t.Fatalf("expected success with 'hello', got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestFromResult(t *testing.T) {
	t.Parallel()
	e := FromResult(rop.Success(7))
	if !e.IsRight() || e.Right() != 7 {
		t.Fatalf("expected right 7, got: right=%v, val=%v", e.IsRight(), e.Right())
	}

	err := errors.New("down")
	e2 := FromResult(rop.Fail[int](err))
	if !e2.IsLeft() || e2.Left() != err {
		t.Fatalf("expected left with the same error, got: left=%v, err=%v", e2.IsLeft(), e2.Left())
	}
}

func TestRoundTrip_ResultToEitherToResult(t *testing.T) {
	t.Parallel()
	res := ToResult(FromResult(rop.Success("ok")))
	if !res.IsSuccess() || res.Result() != "ok" {
		t.Fatalf("expected success with 'ok', got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestFromPair(t *testing.T) {
	t.Parallel()
	e := FromPair(3, nil)
	if !e.IsRight() || e.Right() != 3 {
		t.Fatalf("expected right 3, got: right=%v, val=%v", e.IsRight(), e.Right())
	}

	err := errors.New("io")
	e2 := FromPair(0, err)
	if !e2.IsLeft() || e2.Left() != err {
		t.Fatalf("expected left with the error, got: left=%v, err=%v", e2.IsLeft(), e2.Left())
	}
}

func TestFromPair_TypedNilError(t *testing.T) {
	t.Parallel()
	var typedNil error = (*timeoutErr)(nil)
	e := FromPair("v", typedNil)
	if !e.IsRight() || e.Right() != "v" {
		t.Fatalf("expected typed nil error to count as no error, got: right=%v", e.IsRight())
	}
}

type timeoutErr struct{}

func (*timeoutErr) Error() string { return "timeout" }

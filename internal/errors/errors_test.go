package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrap_PreservesSentinelChain(t *testing.T) {
	sentinel := stderrors.New("boom")

	wrapped := Wrap(sentinel, "loading samples")
	if !stderrors.Is(wrapped, sentinel) {
		t.Fatalf("expected wrapped error to match sentinel, got %v", wrapped)
	}

	appErr, ok := wrapped.(*AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", wrapped)
	}
	if appErr.Code != CodeInternalError {
		t.Fatalf("expected code %s for foreign cause, got %s", CodeInternalError, appErr.Code)
	}
}

func TestWrap_KeepsAppErrorCode(t *testing.T) {
	inner := ConfigInvalid("PORT must be numeric")

	wrapped := Wrap(inner, "startup")
	appErr, ok := wrapped.(*AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", wrapped)
	}
	if appErr.Code != CodeConfigInvalid {
		t.Fatalf("expected wrapping to keep code %s, got %s", CodeConfigInvalid, appErr.Code)
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if err := Wrap(nil, "context"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := Wrapf(nil, "context %d", 1); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestAppError_MessageIncludesCause(t *testing.T) {
	err := Wrap(stderrors.New("no such file"), "open samples")
	want := "open samples: no such file"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "dotenv.load",
		Kind: KindExecution,
		Path: "/tmp/.env",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindExecution {
		t.Fatalf("expected kind %s", KindExecution)
	}

	msg := err.Error()
	for _, want := range []string{"dotenv.load", "execution", "path=/tmp/.env", "root"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindInvalidConfig}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected IsKind=false for non-OpError")
	}
}

func TestMissingDefinitions(t *testing.T) {
	err := MissingDefinitions("materialize", ".env")

	if !IsKind(err, KindMissingDefinitions) {
		t.Fatalf("expected missing_definitions kind, got %v", err)
	}
	if !errors.Is(err, ErrMissingDefinitions) {
		t.Fatalf("expected sentinel to match")
	}
}

func TestOpErrorNil(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestExecution(t *testing.T) {
	cause := errors.New("permission denied")
	err := Execution("jsconfig.write", "config.js", cause)

	if !IsKind(err, KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}
	if !errors.Is(err, ErrExecution) || !errors.Is(err, cause) {
		t.Fatalf("expected both sentinel and cause to match, got %v", err)
	}
}

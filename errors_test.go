package megahal

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := newError(IoError, "writing brain", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}

	var target *Error
	if !errors.As(err, &target) {
		t.Fatalf("expected errors.As to match *Error")
	}
	if target.Kind != IoError {
		t.Errorf("expected Kind IoError; got %v", target.Kind)
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := newError(FormatError, "bad magic", errors.New("eof"))
	msg := err.Error()
	if !strings.Contains(msg, "eof") {
		t.Errorf("expected the message to include the cause; got %q", msg)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{IoError, FormatError, AllocError, CapacityError} {
		if k.String() == "" {
			t.Errorf("expected a non-empty string for Kind %d", k)
		}
	}
}

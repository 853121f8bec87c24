package response

import (
	"errors"
	"testing"
)

func TestErrorIsMatchesOnStatusAndCode(t *testing.T) {
	sentinel := NewError(500, 100, "unspecified error")
	provider := NewError(500, 100, "provider said: image too large")

	if !errors.Is(provider, sentinel) {
		t.Fatal("errors with the same status and code should match regardless of message")
	}
}

func TestErrorIsRejectsDifferentCode(t *testing.T) {
	a := NewError(400, 106, "object name missing")
	b := NewError(400, 101, "object name must not contain slashes")

	if errors.Is(a, b) {
		t.Fatal("errors with different codes must not match")
	}
}

func TestErrorIsRejectsPlainErrors(t *testing.T) {
	a := NewError(400, 106, "object name missing")

	if errors.Is(a, errors.New("object name missing")) {
		t.Fatal("a plain error must not match a coded error")
	}
}

package config

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"ProjectEmojify/pkg/emoji"
)

func TestNewServerRequiresFiberAndLogger(t *testing.T) {
	if _, err := NewServer(); err == nil {
		t.Fatal("expected an error without a fiber app")
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if _, err := NewServer(WithLogger(logger)); err == nil {
		t.Fatal("expected an error without a fiber app")
	}
}

func TestGreetingRoute(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server, err := NewServer(
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithValidator(NewValidator()),
		WithMiddleware(),
		WithEmojiTable(emoji.Table{}),
		WithUtils(),
	)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	server.RegisterHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := server.engine.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "Hello") {
		t.Fatalf("expected a plaintext greeting, got %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("greeting should be plaintext, got content type %q", ct)
	}
}

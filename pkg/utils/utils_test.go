package utils

import (
	"bytes"
	"image"
	"testing"
	"time"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("expected a 26-character ULID, got %q", id)
	}
}

func TestEncodeImageKnownSubtypes(t *testing.T) {
	u := New()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	for subtype, wantFormat := range map[string]string{
		"jpeg": "jpeg",
		"jpg":  "jpeg",
		"png":  "png",
		"gif":  "gif",
	} {
		data, err := u.EncodeImage(src, subtype)
		if err != nil {
			t.Fatalf("encode %q: %v", subtype, err)
		}
		_, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %q output: %v", subtype, err)
		}
		if format != wantFormat {
			t.Fatalf("subtype %q encoded as %q, want %q", subtype, format, wantFormat)
		}
	}
}

func TestEncodeImageUnknownSubtypeFallsBackToJPEG(t *testing.T) {
	u := New()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	data, err := u.EncodeImage(src, "webp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode fallback output: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg fallback, got %q", format)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	u := New()

	if _, err := u.DecodeImage([]byte("not an image")); err == nil {
		t.Fatal("expected an error for non-image bytes")
	}
}

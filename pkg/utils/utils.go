package utils

import (
	"bytes"
	"crypto/rand"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	DecodeImage(data []byte) (image.Image, error)
	EncodeImage(img image.Image, subtype string) ([]byte, error)
}

type utils struct {
	jpegQuality int
}

func New() IUtils {
	return &utils{
		jpegQuality: 90,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// EncodeImage writes img in the format named by the content subtype
// ("jpeg", "png", ...). Unrecognized subtypes fall back to JPEG.
func (u *utils) EncodeImage(img image.Image, subtype string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch subtype {
	case "jpeg", "jpg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: u.jpegQuality})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: u.jpegQuality})
	}

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

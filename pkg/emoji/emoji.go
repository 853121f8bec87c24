package emoji

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"ProjectEmojify/internal/entity"
)

//go:embed assets/*.png
var assetFS embed.FS

// Table maps an emotion category to its overlay image. It is built once at
// startup and read-only afterwards, so concurrent requests can share it.
type Table map[entity.EmotionCategory]image.Image

var assetFiles = map[entity.EmotionCategory]string{
	entity.EmotionJoy:      "assets/joy.png",
	entity.EmotionAnger:    "assets/anger.png",
	entity.EmotionSurprise: "assets/surprise.png",
	entity.EmotionSorrow:   "assets/sorrow.png",
	entity.EmotionHat:      "assets/hat.png",
	entity.EmotionNone:     "assets/none.png",
}

// New loads every bundled overlay. A missing or undecodable asset is an
// error; the caller treats that as fatal.
func New() (Table, error) {
	table := make(Table, len(assetFiles))

	for category, name := range assetFiles {
		f, err := assetFS.Open(name)
		if err != nil {
			return nil, fmt.Errorf("missing emoji asset %s: %w", name, err)
		}

		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode emoji asset %s: %w", name, err)
		}

		table[category] = img
	}

	return table, nil
}

func (t Table) Lookup(category entity.EmotionCategory) image.Image {
	return t[category]
}

package emojifyService

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"ProjectEmojify/internal/entity"
	"ProjectEmojify/pkg/emoji"
)

var (
	joyColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	angerColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	hatColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	noneColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func solid(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func testTable() emoji.Table {
	return emoji.Table{
		entity.EmotionJoy:      solid(joyColor),
		entity.EmotionAnger:    solid(angerColor),
		entity.EmotionSurprise: solid(color.RGBA{R: 255, G: 255, B: 0, A: 255}),
		entity.EmotionSorrow:   solid(color.RGBA{R: 0, G: 255, B: 255, A: 255}),
		entity.EmotionHat:      solid(hatColor),
		entity.EmotionNone:     solid(noneColor),
	}
}

func whiteCanvas(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return img
}

func boundingPoly(x0, y0, x1, y1 int) [4]entity.Vertex {
	return [4]entity.Vertex{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestCompositeGeometry(t *testing.T) {
	a := entity.FaceAnnotation{
		Joy:      entity.LikelihoodVeryLikely,
		Vertices: boundingPoly(10, 10, 50, 60),
	}

	got := Composite(whiteCanvas(100, 100), []entity.FaceAnnotation{a}, testTable(), false)

	// width must be 40, height 50, anchored at (10, 10)
	inside := []image.Point{{11, 11}, {30, 30}, {49, 59}}
	for _, p := range inside {
		if got.RGBAAt(p.X, p.Y) != joyColor {
			t.Fatalf("pixel %v inside the overlay should be joy-colored, got %v", p, got.RGBAAt(p.X, p.Y))
		}
	}

	outside := []image.Point{{5, 5}, {55, 30}, {30, 65}, {9, 30}, {30, 9}}
	for _, p := range outside {
		if got.RGBAAt(p.X, p.Y) != background {
			t.Fatalf("pixel %v outside the overlay should be untouched, got %v", p, got.RGBAAt(p.X, p.Y))
		}
	}
}

func TestCompositeDrawOrderOnOverlap(t *testing.T) {
	first := entity.FaceAnnotation{
		Joy:      entity.LikelihoodVeryLikely,
		Vertices: boundingPoly(10, 10, 50, 50),
	}
	second := entity.FaceAnnotation{
		Anger:    entity.LikelihoodVeryLikely,
		Vertices: boundingPoly(30, 30, 70, 70),
	}

	got := Composite(whiteCanvas(100, 100), []entity.FaceAnnotation{first, second}, testTable(), false)

	if got.RGBAAt(40, 40) != angerColor {
		t.Fatalf("overlap pixel should carry the later annotation's overlay, got %v", got.RGBAAt(40, 40))
	}
	if got.RGBAAt(15, 15) != joyColor {
		t.Fatalf("non-overlapping part of the first overlay should survive, got %v", got.RGBAAt(15, 15))
	}
	if got.RGBAAt(65, 65) != angerColor {
		t.Fatalf("non-overlapping part of the second overlay missing, got %v", got.RGBAAt(65, 65))
	}
}

func TestCompositeNoneFaceGetsNoneOverlay(t *testing.T) {
	a := entity.FaceAnnotation{
		Vertices: boundingPoly(10, 10, 30, 30),
	}

	got := Composite(whiteCanvas(50, 50), []entity.FaceAnnotation{a}, testTable(), false)

	if got.RGBAAt(20, 20) != noneColor {
		t.Fatalf("expected the none overlay for an unconfident face, got %v", got.RGBAAt(20, 20))
	}
}

func TestCompositeHatLayering(t *testing.T) {
	a := entity.FaceAnnotation{
		Joy:      entity.LikelihoodVeryLikely,
		Headwear: entity.LikelihoodVeryLikely,
		Vertices: boundingPoly(10, 10, 30, 30),
	}

	withFlag := Composite(whiteCanvas(50, 50), []entity.FaceAnnotation{a}, testTable(), true)
	if withFlag.RGBAAt(20, 20) != hatColor {
		t.Fatalf("hat flag on: expected the hat drawn atop the emotion overlay, got %v", withFlag.RGBAAt(20, 20))
	}

	withoutFlag := Composite(whiteCanvas(50, 50), []entity.FaceAnnotation{a}, testTable(), false)
	if withoutFlag.RGBAAt(20, 20) != joyColor {
		t.Fatalf("hat flag off: expected only the emotion overlay, got %v", withoutFlag.RGBAAt(20, 20))
	}
}

func TestCompositeClipsOutOfRangeBoxes(t *testing.T) {
	a := entity.FaceAnnotation{
		Joy:      entity.LikelihoodVeryLikely,
		Vertices: boundingPoly(40, 40, 120, 120),
	}

	got := Composite(whiteCanvas(50, 50), []entity.FaceAnnotation{a}, testTable(), false)

	if got.Bounds() != image.Rect(0, 0, 50, 50) {
		t.Fatalf("canvas bounds changed: %v", got.Bounds())
	}
	if got.RGBAAt(45, 45) != joyColor {
		t.Fatalf("in-bounds slice of an oversized overlay should draw, got %v", got.RGBAAt(45, 45))
	}
}

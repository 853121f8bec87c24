package emojifyService

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"ProjectEmojify/internal/entity"
	"ProjectEmojify/pkg/emoji"
)

// Composite draws one overlay per annotation onto a working copy of src, in
// annotation order; later faces draw on top of earlier ones where boxes
// intersect. Overlay geometry follows the classifier's vertex ordering:
// width is x[1]-x[0], height is y[2]-y[0], and the anchor is (x[0], y[1]).
// These are the exact index pairings of the provider convention, not a
// min/max bounding box.
func Composite(src image.Image, annotations []entity.FaceAnnotation, table emoji.Table, hatOverlay bool) *image.RGBA {
	canvas := image.NewRGBA(src.Bounds())
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)

	for _, a := range annotations {
		drawOverlay(canvas, a, table.Lookup(SelectEmotionEmoji(a)))

		if hatOverlay && SelectHatOverlay(a) {
			drawOverlay(canvas, a, table.Lookup(entity.EmotionHat))
		}
	}

	return canvas
}

func drawOverlay(canvas *image.RGBA, a entity.FaceAnnotation, overlay image.Image) {
	if overlay == nil {
		return
	}

	width := a.Vertices[1].X - a.Vertices[0].X
	height := a.Vertices[2].Y - a.Vertices[0].Y
	if width <= 0 || height <= 0 {
		return
	}

	anchor := image.Pt(a.Vertices[0].X, a.Vertices[1].Y)
	target := image.Rect(anchor.X, anchor.Y, anchor.X+width, anchor.Y+height)

	xdraw.ApproxBiLinear.Scale(canvas, target, overlay, overlay.Bounds(), xdraw.Over, nil)
}

func (s *emojifyService) composite(src image.Image, annotations []entity.FaceAnnotation) *image.RGBA {
	return Composite(src, annotations, s.emojis, s.hatOverlay)
}

package emojifyService

import (
	"ProjectEmojify/internal/entity"
)

// Likelihood levels confident enough to pick an overlay, most confident
// first. Unlikely and below never select.
var selectingLevels = []entity.Likelihood{
	entity.LikelihoodVeryLikely,
	entity.LikelihoodLikely,
	entity.LikelihoodPossible,
}

// Emotion axes in tie-break priority order. Among equally confident axes Joy
// beats Anger beats Surprise beats Sorrow; callers observe this order, so it
// must stay an explicit list rather than a map iteration.
var emotionAxes = []struct {
	category entity.EmotionCategory
	axis     func(entity.FaceAnnotation) entity.Likelihood
}{
	{entity.EmotionJoy, func(a entity.FaceAnnotation) entity.Likelihood { return a.Joy }},
	{entity.EmotionAnger, func(a entity.FaceAnnotation) entity.Likelihood { return a.Anger }},
	{entity.EmotionSurprise, func(a entity.FaceAnnotation) entity.Likelihood { return a.Surprise }},
	{entity.EmotionSorrow, func(a entity.FaceAnnotation) entity.Likelihood { return a.Sorrow }},
}

// SelectEmotionEmoji picks the overlay for a face: the most confident axis
// wins, priority order breaks ties, and a face with nothing at Possible or
// better gets EmotionNone.
func SelectEmotionEmoji(a entity.FaceAnnotation) entity.EmotionCategory {
	for _, level := range selectingLevels {
		for _, emotion := range emotionAxes {
			if emotion.axis(a) == level {
				return emotion.category
			}
		}
	}
	return entity.EmotionNone
}

// SelectHatOverlay checks only the headwear axis. It is evaluated
// independently of the emotion selection.
func SelectHatOverlay(a entity.FaceAnnotation) bool {
	for _, level := range selectingLevels {
		if a.Headwear == level {
			return true
		}
	}
	return false
}

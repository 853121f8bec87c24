package entity

// EmotionCategory picks which overlay gets drawn on a face. Hat and the four
// emotions are independent axes on the annotation but only one overlay is
// drawn per face, so they share the enumeration.
type EmotionCategory string

const (
	EmotionJoy      EmotionCategory = "joy"
	EmotionAnger    EmotionCategory = "anger"
	EmotionSurprise EmotionCategory = "surprise"
	EmotionSorrow   EmotionCategory = "sorrow"
	EmotionHat      EmotionCategory = "hat"
	EmotionNone     EmotionCategory = "none"
)

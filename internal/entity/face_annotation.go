package entity

// Likelihood is the ordinal confidence scale the classifier reports for each
// face attribute. Higher values are more confident.
type Likelihood int

const (
	LikelihoodUnknown Likelihood = iota
	LikelihoodVeryUnlikely
	LikelihoodUnlikely
	LikelihoodPossible
	LikelihoodLikely
	LikelihoodVeryLikely
)

func (l Likelihood) String() string {
	switch l {
	case LikelihoodVeryLikely:
		return "VERY_LIKELY"
	case LikelihoodLikely:
		return "LIKELY"
	case LikelihoodPossible:
		return "POSSIBLE"
	case LikelihoodUnlikely:
		return "UNLIKELY"
	case LikelihoodVeryUnlikely:
		return "VERY_UNLIKELY"
	default:
		return "UNKNOWN"
	}
}

type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FaceAnnotation is one detected face. Vertices follow the classifier's
// convention: four points clockwise from the top-left corner.
type FaceAnnotation struct {
	Joy      Likelihood `json:"joy"`
	Anger    Likelihood `json:"anger"`
	Surprise Likelihood `json:"surprise"`
	Sorrow   Likelihood `json:"sorrow"`
	Headwear Likelihood `json:"headwear"`
	Vertices [4]Vertex  `json:"vertices"`
}

package vision

import (
	"context"
	"errors"
	"os"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"ProjectEmojify/internal/entity"
)

// ErrBadResponseCount reports that the batch annotation response did not
// contain exactly one entry for our single request.
var ErrBadResponseCount = errors.New("annotation response count is not exactly one")

// ProviderError carries an error the classifier reported inside an otherwise
// successful response.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

type ItfVision interface {
	DetectFaces(ctx context.Context, imageURI string) ([]entity.FaceAnnotation, error)
	Close() error
}

type visionClient struct {
	client *visionapi.ImageAnnotatorClient
}

func New(ctx context.Context) (ItfVision, error) {
	var opts []option.ClientOption
	if credsFile := os.Getenv("STORAGE_CREDENTIALS_FILE"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	client, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &visionClient{client: client}, nil
}

// DetectFaces submits one face-detection request for the image at imageURI
// (a gs:// URI; the image is never re-uploaded to the classifier).
func (v *visionClient) DetectFaces(ctx context.Context, imageURI string) ([]entity.FaceAnnotation, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{
					Source: &visionpb.ImageSource{GcsImageUri: imageURI},
				},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_FACE_DETECTION},
				},
			},
		},
	}

	res, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(res.Responses) != 1 {
		return nil, ErrBadResponseCount
	}

	annotated := res.Responses[0]
	if annotated.Error != nil {
		return nil, &ProviderError{Message: annotated.Error.Message}
	}

	faces := make([]entity.FaceAnnotation, 0, len(annotated.FaceAnnotations))
	for _, fa := range annotated.FaceAnnotations {
		faces = append(faces, toEntity(fa))
	}

	return faces, nil
}

func (v *visionClient) Close() error {
	return v.client.Close()
}

func toEntity(fa *visionpb.FaceAnnotation) entity.FaceAnnotation {
	annotation := entity.FaceAnnotation{
		Joy:      toLikelihood(fa.GetJoyLikelihood()),
		Anger:    toLikelihood(fa.GetAngerLikelihood()),
		Surprise: toLikelihood(fa.GetSurpriseLikelihood()),
		Sorrow:   toLikelihood(fa.GetSorrowLikelihood()),
		Headwear: toLikelihood(fa.GetHeadwearLikelihood()),
	}

	for i, vertex := range fa.GetBoundingPoly().GetVertices() {
		if i >= len(annotation.Vertices) {
			break
		}
		annotation.Vertices[i] = entity.Vertex{X: int(vertex.GetX()), Y: int(vertex.GetY())}
	}

	return annotation
}

func toLikelihood(l visionpb.Likelihood) entity.Likelihood {
	switch l {
	case visionpb.Likelihood_VERY_LIKELY:
		return entity.LikelihoodVeryLikely
	case visionpb.Likelihood_LIKELY:
		return entity.LikelihoodLikely
	case visionpb.Likelihood_POSSIBLE:
		return entity.LikelihoodPossible
	case visionpb.Likelihood_UNLIKELY:
		return entity.LikelihoodUnlikely
	case visionpb.Likelihood_VERY_UNLIKELY:
		return entity.LikelihoodVeryUnlikely
	default:
		return entity.LikelihoodUnknown
	}
}

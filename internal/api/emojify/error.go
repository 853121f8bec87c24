package emojify

import (
	"ProjectEmojify/pkg/response"
	"net/http"
)

// Application error codes. These are part of the external contract: callers
// match on the numbers, so they must never be renumbered.
const (
	CodeUnspecified      = 100
	CodeForbiddenSlashes = 101
	CodeBucketMissing    = 102
	CodeBlobMissing      = 103
	CodeNoContentType    = 104
	CodeBadResponseCount = 105
	CodeNameMissing      = 106
	CodeNoFacesDetected  = 107
)

var (
	ErrObjectNameMissing = response.NewError(http.StatusBadRequest, CodeNameMissing, "object name missing")
	ErrSlashesForbidden  = response.NewError(http.StatusBadRequest, CodeForbiddenSlashes, "object name must not contain slashes")
	ErrBucketMissing     = response.NewError(http.StatusInternalServerError, CodeBucketMissing, "bucket name missing/misconfigured")
	ErrBlobMissing       = response.NewError(http.StatusBadRequest, CodeBlobMissing, "blob doesn't exist")
	ErrNoContentType     = response.NewError(http.StatusBadRequest, CodeNoContentType, "object has no content type")
	ErrBadResponseCount  = response.NewError(http.StatusInternalServerError, CodeBadResponseCount, "face detection returned other than exactly one response")
	ErrNoFacesDetected   = response.NewError(http.StatusBadRequest, CodeNoFacesDetected, "no faces detected")
)

// NewUnspecifiedError wraps an opaque provider or transport fault as code 100,
// keeping the provider's message text.
func NewUnspecifiedError(msg string) error {
	return response.NewError(http.StatusInternalServerError, CodeUnspecified, msg)
}

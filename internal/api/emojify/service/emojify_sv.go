package emojifyService

import (
	"ProjectEmojify/internal/api/emojify"
	"ProjectEmojify/internal/entity"
	contextPkg "ProjectEmojify/pkg/context"
	"ProjectEmojify/pkg/storage"
	"ProjectEmojify/pkg/vision"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const emojifiedPrefix = "emojified/emojified-"

// Emojify runs the whole pipeline for one object: validate the name, resolve
// the blob, detect faces by storage URI, composite the overlays and publish
// the result publicly readable. Steps run strictly in sequence, nothing is
// retried, and any step can short-circuit with one of the taxonomy errors.
func (s *emojifyService) Emojify(ctx context.Context, objectName string) (*entity.EmojifyResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if objectName == "" {
		return nil, emojify.ErrObjectNameMissing
	}
	if strings.ContainsAny(objectName, `/\`) {
		return nil, emojify.ErrSlashesForbidden
	}

	bucket := s.storage.BucketName()
	if bucket == "" {
		return nil, emojify.ErrBucketMissing
	}

	attrs, err := s.storage.ObjectAttrs(ctx, objectName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, emojify.ErrBlobMissing
		}
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"object_name": objectName,
			"error":       err.Error(),
		}).Error("Failed to resolve blob metadata")
		return nil, emojify.NewUnspecifiedError(err.Error())
	}

	subtype, ok := imageSubtype(attrs.ContentType)
	if !ok {
		return nil, emojify.ErrNoContentType
	}

	faces, err := s.vision.DetectFaces(ctx, fmt.Sprintf("gs://%s/%s", bucket, objectName))
	if err != nil {
		if errors.Is(err, vision.ErrBadResponseCount) {
			return nil, emojify.ErrBadResponseCount
		}
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"object_name": objectName,
			"error":       err.Error(),
		}).Error("Face detection failed")
		return nil, emojify.NewUnspecifiedError(err.Error())
	}

	if len(faces) == 0 {
		return nil, emojify.ErrNoFacesDetected
	}

	data, err := s.storage.Download(ctx, objectName)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"object_name": objectName,
			"error":       err.Error(),
		}).Error("Failed to download source image")
		return nil, emojify.NewUnspecifiedError(err.Error())
	}

	src, err := s.utils.DecodeImage(data)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"object_name": objectName,
			"error":       err.Error(),
		}).Error("Failed to decode source image")
		return nil, emojify.NewUnspecifiedError(err.Error())
	}

	encoded, err := s.utils.EncodeImage(s.composite(src, faces), subtype)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"object_name": objectName,
			"error":       err.Error(),
		}).Error("Failed to encode emojified image")
		return nil, emojify.NewUnspecifiedError(err.Error())
	}

	objectPath := emojifiedPrefix + objectName
	if err := s.storage.Upload(ctx, objectPath, encoded, attrs.ContentType, true); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"object_path": objectPath,
			"error":       err.Error(),
		}).Error("Failed to upload emojified image")
		return nil, emojify.NewUnspecifiedError(err.Error())
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"object_path": objectPath,
		"faces":       len(faces),
	}).Debug("Emojified image published")

	return &entity.EmojifyResult{
		ObjectPath:   objectPath,
		EmojifiedURL: s.storage.ObjectURL(objectPath),
	}, nil
}

// imageSubtype derives the encoder name from a blob's MIME type, e.g.
// "image/png" -> "png". An empty or slashless type has no subtype.
func imageSubtype(contentType string) (string, bool) {
	parts := strings.SplitN(contentType, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

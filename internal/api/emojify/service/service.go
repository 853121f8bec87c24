package emojifyService

import (
	"ProjectEmojify/internal/entity"
	"ProjectEmojify/pkg/emoji"
	"ProjectEmojify/pkg/storage"
	"ProjectEmojify/pkg/utils"
	"ProjectEmojify/pkg/vision"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IEmojifyService interface {
	Emojify(ctx context.Context, objectName string) (*entity.EmojifyResult, error)
}

type emojifyService struct {
	log        *logrus.Logger
	storage    storage.ItfStorage
	vision     vision.ItfVision
	emojis     emoji.Table
	utils      utils.IUtils
	hatOverlay bool
}

func NewEmojifyService(
	log *logrus.Logger,
	storageClient storage.ItfStorage,
	visionClient vision.ItfVision,
	emojis emoji.Table,
	utils utils.IUtils,
) IEmojifyService {
	return &emojifyService{
		log:        log,
		storage:    storageClient,
		vision:     visionClient,
		emojis:     emojis,
		utils:      utils,
		hatOverlay: os.Getenv("EMOJI_HAT_OVERLAY") == "true",
	}
}

package emojifyHandler

import (
	emojifyService "ProjectEmojify/internal/api/emojify/service"
	"ProjectEmojify/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type EmojifyHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	emojifyService emojifyService.IEmojifyService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	es emojifyService.IEmojifyService,
) *EmojifyHandler {
	return &EmojifyHandler{
		log:            log,
		validator:      validator,
		middleware:     middleware,
		emojifyService: es,
	}
}

func (h *EmojifyHandler) Start(srv fiber.Router) {
	srv.Get("/emojify", h.Emojify)
}

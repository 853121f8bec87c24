package config

import (
	emojifyHandler "ProjectEmojify/internal/api/emojify/handler"
	emojifyService "ProjectEmojify/internal/api/emojify/service"
	"ProjectEmojify/internal/middleware"
	"ProjectEmojify/pkg/emoji"
	"ProjectEmojify/pkg/storage"
	"ProjectEmojify/pkg/utils"
	"ProjectEmojify/pkg/vision"
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	handlers      []handler
	storageClient storage.ItfStorage
	visionClient  vision.ItfVision
	emojiTable    emoji.Table
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithStorageClient(ctx context.Context) ServerOption {
	return func(s *Server) error {
		client, err := storage.New(ctx)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize storage client: %v", err)
			}
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		s.storageClient = client
		return nil
	}
}

func WithVisionClient(ctx context.Context) ServerOption {
	return func(s *Server) error {
		client, err := vision.New(ctx)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize vision client: %v", err)
			}
			return fmt.Errorf("failed to create vision client: %w", err)
		}
		s.visionClient = client
		return nil
	}
}

func WithEmojiTable(table emoji.Table) ServerOption {
	return func(s *Server) error {
		s.emojiTable = table
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	emojifyServices := emojifyService.NewEmojifyService(s.log, s.storageClient, s.visionClient, s.emojiTable, s.utils)
	emojifyHandlers := emojifyHandler.New(s.log, s.validator, s.middleware, emojifyServices)

	s.setupGreeting()
	s.handlers = append(s.handlers, emojifyHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupGreeting() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("Hello! Hit /emojify?objectName=<name> to put emoji on the faces in your image.")
	})
}

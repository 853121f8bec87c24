package main

import (
	"ProjectEmojify/internal/config"
	"ProjectEmojify/pkg/emoji"
	"ProjectEmojify/pkg/log"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	ctx := context.Background()

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	// Overlay assets are bundled into the binary; a missing one means the
	// build is broken and the process must not come up.
	emojiTable, err := emoji.New()
	if err != nil {
		logger.Fatalf("Error loading emoji assets: %v", err)
	}

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithStorageClient(ctx),
		config.WithVisionClient(ctx),
		config.WithEmojiTable(emojiTable),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}

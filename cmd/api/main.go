package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vif/config"
	_ "vif/docs" // Swagger docs
	"vif/internal/httpserver"
	"vif/pkg/elevenlabs"
	"vif/pkg/gcalendar"
	"vif/pkg/llmprovider"
	"vif/pkg/log"
)

// @title       Vif API
// @description Natural-language todo list: an LLM resolves utterances into structured actions applied to a persisted list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Vif...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage path: %s", cfg.Storage.Path)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (key=%s, model=%s)", p.Name(), p.Key(), p.Model())
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Speech-to-text (optional)
	var speechClient elevenlabs.IElevenLabs
	if cfg.ElevenLabs.APIKey != "" {
		client, elErr := elevenlabs.New(cfg.ElevenLabs.APIKey)
		if elErr != nil {
			logger.Warnf(ctx, "ElevenLabs not available (optional): %v", elErr)
		} else {
			if cfg.ElevenLabs.Model != "" {
				client = client.WithModel(cfg.ElevenLabs.Model)
			}
			speechClient = client
			logger.Info(ctx, "Speech-to-text initialized")
		}
	} else {
		logger.Warn(ctx, "ELEVENLABS_API_KEY missing, speech-to-text disabled")
	}

	// 5. Google Calendar mirroring (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		LLM:         llmManager,
		Speech:      speechClient,
		Calendar:    calendarClient,
		StoragePath: cfg.Storage.Path,
		Timezone:    cfg.Todo.Timezone,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

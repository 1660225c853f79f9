package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voicetask/config"
	_ "voicetask/docs" // Swagger docs
	"voicetask/internal/httpserver"
	"voicetask/internal/scheduler"
	taskHTTP "voicetask/internal/task/delivery/http"
	"voicetask/internal/task/repository/memory"
	"voicetask/internal/task/usecase"
	"voicetask/pkg/datemath"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/gemini"
	"voicetask/pkg/log"
)

// @title       VoiceTask API
// @description Voice-driven task capture with temporal reasoning, urgency scoring, and Google Calendar mirroring.
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

	logger.Info(ctx, "Starting VoiceTask...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math in the user's timezone
	timezone := cfg.Engine.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}

	// 4. Gemini enhancer (optional)
	var geminiClient gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		geminiClient = gemini.NewClient(cfg.Gemini.APIKey)
		logger.Info(ctx, "Gemini enhancer initialized")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set, transcripts use local parsing only")
	}

	// 5. Google Calendar mirror (optional)
	var calendarMirror gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarMirror = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Store
	store := memory.New(logger)
	defer store.Close()

	// 7. Task UseCase
	taskUC := usecase.New(
		logger,
		geminiClient,
		calendarMirror,
		store,
		dateMathParser,
		timezone,
		cfg.GoogleCalendar.CalendarID,
		cfg.Engine.DangerWindow,
		cfg.Engine.ScoreInterval,
	)

	// 8. Re-scoring scheduler, feeding the usecase's score cache
	rescorer := scheduler.New(logger, store, cfg.Engine.ScoreInterval, taskUC)
	if err := rescorer.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start scheduler: ", err)
		return
	}
	defer rescorer.Stop()

	// 9. HTTP delivery
	taskHandler := taskHTTP.New(logger, taskUC, cfg.HTTPServer.CapturePerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskHandler: taskHandler,
		Rescorer:    rescorer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
